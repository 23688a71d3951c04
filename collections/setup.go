package collections

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	log "github.com/sirupsen/logrus"

	"projectbuilder/services"
)

// documentMaxSize caps a stored estimate document at 5MB.
const documentMaxSize = 5 << 20

// Setup programmatically creates/ensures the estimates collection exists.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, services.EstimatesCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "client_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "project_address", Required: false})
		c.Fields.Add(&core.JSONField{Name: "document", Required: true, MaxSize: documentMaxSize})
		c.Fields.Add(&core.NumberField{Name: "grand_total", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Debugf("Collection %q already exists, skipping creation.", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	log.WithField("id", collection.Id).Infof("Created collection %q", name)
	return collection
}
