package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"projectbuilder/services"
)

// lineFields lists the form fields a line edit may carry, in apply order.
var lineFields = []string{"desc", "unit", "qty", "matUnit", "hoursPerQty", "rate", "notes", "dimL", "dimW"}

// indexParam returns the path index, or -1 so the edit reports not found.
func indexParam(e *core.RequestEvent, name string) int {
	idx, ok := pathIndex(e, name)
	if !ok {
		return -1
	}
	return idx
}

// sheetEdit wraps a mutation of sheet {sheet} into a handler that saves the
// estimate and answers with the refreshed sheet.
func sheetEdit(app *pocketbase.PocketBase, action string, mutate func(e *core.RequestEvent, p *services.Project, si int) error) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		si := indexParam(e, "sheet")
		p, rec, err := applyEdit(app, e, action, func(p *services.Project) error {
			return mutate(e, p, si)
		})
		if err != nil {
			return editError(e, action, err)
		}
		return renderSheetFragment(e, rec, p, si)
	}
}

// HandleLineUpdate applies every line field present in the posted form.
func HandleLineUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return sheetEdit(app, "line_update", func(e *core.RequestEvent, p *services.Project, si int) error {
		if err := e.Request.ParseForm(); err != nil {
			return fmt.Errorf("line_update: parse form: %w", services.ErrUnknownField)
		}
		li := indexParam(e, "line")

		applied := 0
		for _, field := range lineFields {
			if _, ok := e.Request.PostForm[field]; !ok {
				continue
			}
			if err := p.SetLineField(si, li, field, e.Request.PostForm.Get(field)); err != nil {
				return err
			}
			applied++
		}
		if applied == 0 {
			return fmt.Errorf("line_update: no line field posted: %w", services.ErrUnknownField)
		}
		return nil
	})
}

// HandleLineDims turns length x width mode on or off for a line.
func HandleLineDims(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return sheetEdit(app, "line_dims", func(e *core.RequestEvent, p *services.Project, si int) error {
		return p.SetUseDims(si, indexParam(e, "line"), e.Request.FormValue("useDims") == "on")
	})
}

// HandleLineDuplicate copies a line directly below itself.
func HandleLineDuplicate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return sheetEdit(app, "line_duplicate", func(e *core.RequestEvent, p *services.Project, si int) error {
		return p.DuplicateLine(si, indexParam(e, "line"))
	})
}

// HandleLineDelete removes a line from its sheet.
func HandleLineDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return sheetEdit(app, "line_delete", func(e *core.RequestEvent, p *services.Project, si int) error {
		return p.RemoveLine(si, indexParam(e, "line"))
	})
}

// HandleAddCustomLine appends a custom line at the sheet's current rate.
func HandleAddCustomLine(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return sheetEdit(app, "line_add_custom", func(e *core.RequestEvent, p *services.Project, si int) error {
		return p.AddCustomLine(si)
	})
}

// HandleAddStandardLine appends the chosen predefined line.
func HandleAddStandardLine(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return sheetEdit(app, "line_add_standard", func(e *core.RequestEvent, p *services.Project, si int) error {
		std, err := parseIndex(e.Request.FormValue("std"))
		if err != nil {
			return fmt.Errorf("line_add_standard: %q: %w", e.Request.FormValue("std"), services.ErrStandardLineNotFound)
		}
		return p.AddStandardLine(si, std)
	})
}

// HandleSheetRate updates the sheet's rate source and, when posted, its own
// labor rate.
func HandleSheetRate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return sheetEdit(app, "sheet_rate", func(e *core.RequestEvent, p *services.Project, si int) error {
		if err := e.Request.ParseForm(); err != nil {
			return fmt.Errorf("sheet_rate: parse form: %w", services.ErrUnknownField)
		}
		if err := p.SetUseGlobalRate(si, e.Request.PostForm.Get("useGlobalRate") == "on"); err != nil {
			return err
		}
		if _, ok := e.Request.PostForm["sheetRate"]; ok {
			return p.SetSheetRate(si, e.Request.PostForm.Get("sheetRate"))
		}
		return nil
	})
}

func parseIndex(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}
