package assistant

import (
	"context"
	"testing"

	"restaurant-ordering-assistant/internal/agent"
	"restaurant-ordering-assistant/internal/cart"
	"restaurant-ordering-assistant/internal/menu"
	"restaurant-ordering-assistant/pkg/llmprovider"
	pkgLog "restaurant-ordering-assistant/pkg/log"
)

type stubMenu struct{}

func (stubMenu) GetMenu(ctx context.Context) (menu.Menu, error) {
	return menu.Menu{Items: []menu.Item{{Name: "Margherita Pizza", Description: "Classic", Price: 250}}}, nil
}
func (stubMenu) FindItem(ctx context.Context, name string) (menu.Item, error) {
	return menu.Item{Name: "Margherita Pizza", Description: "Classic", Price: 250}, nil
}
func (stubMenu) Source() string { return "menu.json" }

type stubCart struct{ added []cart.AddInput }

func (s *stubCart) Add(ctx context.Context, sessionID string, input cart.AddInput) (cart.Output, error) {
	s.added = append(s.added, input)
	return cart.Output{Status: cart.StatusSuccess, Message: "Added 2 x Margherita Pizza (₹250 each) to cart."}, nil
}
func (s *stubCart) Remove(ctx context.Context, sessionID string, input cart.RemoveInput) (cart.Output, error) {
	return cart.Output{}, nil
}
func (s *stubCart) Show(ctx context.Context, sessionID string) (cart.Output, error) {
	return cart.Output{}, nil
}
func (s *stubCart) Clear(ctx context.Context, sessionID string) (cart.Output, error) {
	return cart.Output{}, nil
}

func TestMenuAgent(t *testing.T) {
	llm := &scriptedLLM{responses: []llmprovider.Message{
		calls(&llmprovider.FunctionCall{ID: "m1", Name: "get_menu"}),
		text("We have Margherita Pizza."),
		text(`{"items":[{"name":"Margherita Pizza","description":"Classic","price":250}]}`),
	}}
	a := NewMenuAgent(llm, stubMenu{}, pkgLog.NewNop())

	out, err := a.Run(context.Background(), "s1", "show me the menu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Name() != MenuAgentName || out.Kind() != agent.OutputStructured {
		t.Fatalf("unexpected output %s from %s", out.Kind(), a.Name())
	}

	var m menu.Menu
	if err := out.Decode(&m); err != nil || len(m.Items) != 1 || m.Items[0].Price != 250 {
		t.Errorf("unexpected menu %+v, %v", m, err)
	}

	observed := llm.requests[1].Messages[2].Parts[0].FunctionResponse.Response
	if _, ok := observed.(menu.Menu); !ok {
		t.Errorf("expected the menu to be fed back, got %T", observed)
	}
}

func TestCartAgent(t *testing.T) {
	cartUC := &stubCart{}
	llm := &scriptedLLM{responses: []llmprovider.Message{
		calls(&llmprovider.FunctionCall{ID: "c1", Name: "add_to_cart", Args: map[string]interface{}{
			"item_name": "Margherita Pizza",
			"quantity":  float64(2),
		}}),
		text("Added 2 x Margherita Pizza (₹250 each) to cart."),
	}}
	a := NewCartAgent(llm, cartUC, stubMenu{}, pkgLog.NewNop())

	out, err := a.Run(context.Background(), "s1", "add 2 pizzas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Name() != CartAgentName || out.Kind() != agent.OutputText {
		t.Fatalf("unexpected output from %s", a.Name())
	}
	if len(cartUC.added) != 1 || cartUC.added[0].Quantity != 2 || cartUC.added[0].Item.Price != 250 {
		t.Errorf("unexpected cart calls %+v", cartUC.added)
	}
	if len(llm.requests[0].Tools) != 4 {
		t.Errorf("expected 4 cart tools, got %d", len(llm.requests[0].Tools))
	}
}
