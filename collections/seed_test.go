package collections

import (
	"testing"
)

func TestSeed_PopulatesCatalog(t *testing.T) {
	app := newBootstrappedApp(t)
	Setup(app)

	if err := Seed(app); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}

	types, err := app.FindRecordsByFilter("product_types", "id != ''", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("could not query product_types: %v", err)
	}
	if len(types) != len(seedTypes) {
		t.Errorf("expected %d product types, got %d", len(seedTypes), len(types))
	}

	products, err := app.FindRecordsByFilter("products", "id != ''", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("could not query products: %v", err)
	}
	if len(products) != len(seedProducts) {
		t.Errorf("expected %d products, got %d", len(seedProducts), len(products))
	}

	prices, err := app.FindRecordsByFilter("project_prices", "id != ''", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("could not query project_prices: %v", err)
	}
	if len(prices) != len(seedProjectPrices) {
		t.Errorf("expected %d project prices, got %d", len(seedProjectPrices), len(prices))
	}

	bomLines, err := app.FindRecordsByFilter("bom_details", "id != ''", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("could not query bom_details: %v", err)
	}
	wantLines := 0
	for _, def := range seedProjectPrices {
		wantLines += len(def.bomLines)
	}
	if len(bomLines) != wantLines {
		t.Errorf("expected %d BOM lines, got %d", wantLines, len(bomLines))
	}
}

func TestSeed_SecondRunIsNoop(t *testing.T) {
	app := newBootstrappedApp(t)
	Setup(app)

	if err := Seed(app); err != nil {
		t.Fatalf("first Seed returned error: %v", err)
	}
	if err := Seed(app); err != nil {
		t.Fatalf("second Seed returned error: %v", err)
	}

	products, err := app.FindRecordsByFilter("products", "id != ''", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("could not query products: %v", err)
	}
	if len(products) != len(seedProducts) {
		t.Errorf("expected %d products after re-seed, got %d", len(seedProducts), len(products))
	}
}

func TestSeed_DeactivatedMake(t *testing.T) {
	app := newBootstrappedApp(t)
	Setup(app)

	if err := Seed(app); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}

	inactive, err := app.FindRecordsByFilter("product_makes", "active = false", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("could not query product_makes: %v", err)
	}
	if len(inactive) != 1 {
		t.Fatalf("expected 1 deactivated make, got %d", len(inactive))
	}
	if got := inactive[0].GetString("name"); got != "Vikram Solar" {
		t.Errorf("deactivated make = %q, want Vikram Solar", got)
	}
}
