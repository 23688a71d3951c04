package handlers

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"projectbuilder/services"
	"projectbuilder/templates"
)

// inputFields lists the project inputs accepted from the inputs form.
var inputFields = []string{"clientName", "projectAddress", "crewRate", "markup", "tax", "travelFees", "disposalFee", "discount", "wastePct"}

// HandleInputsView renders the project-wide inputs form.
func HandleInputsView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, rec, err := loadEstimate(app, e)
		if err != nil {
			return editError(e, "inputs_view", err)
		}

		data := buildInputsData(e, rec, p)
		var component templ.Component
		if isHTMX(e) {
			component = templates.InputsFragment(data)
		} else {
			component = templates.InputsPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleInputsUpdate applies every input field present in the posted form.
func HandleInputsUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return inputsEdit(app, "inputs_update", func(e *core.RequestEvent, p *services.Project) error {
		if err := e.Request.ParseForm(); err != nil {
			return fmt.Errorf("inputs_update: parse form: %w", services.ErrUnknownField)
		}
		applied := 0
		for _, field := range inputFields {
			if _, ok := e.Request.PostForm[field]; !ok {
				continue
			}
			if err := p.SetInput(field, e.Request.PostForm.Get(field)); err != nil {
				return err
			}
			applied++
		}
		if applied == 0 {
			return fmt.Errorf("inputs_update: no input posted: %w", services.ErrUnknownField)
		}
		return nil
	})
}

// HandleClientMode switches client mode on or off from its checkbox.
func HandleClientMode(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return inputsEdit(app, "client_mode", func(e *core.RequestEvent, p *services.Project) error {
		return p.SetInput("clientMode", e.Request.FormValue("clientMode"))
	})
}

func inputsEdit(app *pocketbase.PocketBase, action string, mutate func(e *core.RequestEvent, p *services.Project) error) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, rec, err := applyEdit(app, e, action, func(p *services.Project) error {
			return mutate(e, p)
		})
		if err != nil {
			return editError(e, action, err)
		}
		if !isHTMX(e) {
			return e.Redirect(http.StatusFound, "/estimates/"+rec.Id+"/inputs")
		}
		return templates.InputsFragment(buildInputsData(e, rec, p)).Render(e.Request.Context(), e.Response)
	}
}

func buildInputsData(e *core.RequestEvent, rec *core.Record, p services.Project) templates.InputsData {
	in := p.Inputs
	return templates.InputsData{
		Nav:            BuildNavData(e.Request, rec, p, tabInputs),
		EstimateID:     rec.Id,
		ClientName:     in.ClientName,
		ProjectAddress: in.ProjectAddress,
		CrewRate:       services.FormatNumber(in.CrewRate),
		Markup:         services.FormatNumber(in.Markup),
		Tax:            services.FormatNumber(in.Tax),
		TravelFees:     services.FormatNumber(in.TravelFees),
		DisposalFee:    services.FormatNumber(in.DisposalFee),
		Discount:       services.FormatNumber(in.Discount),
		WastePct:       services.FormatNumber(in.WastePct),
		ClientMode:     in.ClientMode,
		Totals:         totalsBar(p),
	}
}
