package collections_test

import (
	"testing"

	"projectbuilder/collections"
	"projectbuilder/testhelpers"
)

func TestSetup_EstimatesCollectionExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, err := app.FindCollectionByNameOrId("estimates")
	if err != nil {
		t.Fatalf("estimates collection not found after Setup(): %v", err)
	}

	for _, f := range []string{"name", "client_name", "project_address", "document", "grand_total", "created", "updated"} {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("estimates: missing field %q", f)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	col, _ := app.FindCollectionByNameOrId("estimates")
	id := col.Id

	collections.Setup(app)

	col, err := app.FindCollectionByNameOrId("estimates")
	if err != nil {
		t.Fatalf("estimates missing after second Setup(): %v", err)
	}
	if col.Id != id {
		t.Errorf("estimates id changed after second Setup(): %s -> %s", id, col.Id)
	}
}
