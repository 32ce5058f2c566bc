package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type RenderReq struct {
	Render *bool `json:"render" example:"true"`
}

type RenderResp struct {
	Render bool `json:"render"`
}

// @Summary	Whether the quad is being drawn
// @Router		/api/render [get]
// @Tags		render
// @Produce	json
// @Success	200	{object}	RenderResp
func (a *Api) getRender(w http.ResponseWriter, _ *http.Request) {
	a.writeRender(w)
}

// @Summary	Switch drawing of the quad on or off
// @Router		/api/render [post]
// @Param		renderReq	body	RenderReq	true	"Render state"
// @Tags		render
// @Accept		json
// @Produce	json
// @Success	200	{object}	RenderResp
// @Failure	400	{string}	string	"Could not decode json request"
func (a *Api) setRender(w http.ResponseWriter, req *http.Request) {
	var renderReq RenderReq
	err := json.NewDecoder(req.Body).Decode(&renderReq)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not decode json request: %s", err), http.StatusBadRequest)
		return
	}
	if renderReq.Render == nil {
		http.Error(w, "render must be specified", http.StatusBadRequest)
		return
	}

	a.theatre.SetRender(*renderReq.Render)
	a.writeRender(w)
}

// @Summary	Toggle drawing of the quad, like the overlay button
// @Router		/api/render/toggle [post]
// @Tags		render
// @Produce	json
// @Success	200	{object}	RenderResp
func (a *Api) toggleRender(w http.ResponseWriter, _ *http.Request) {
	a.theatre.ToggleRender()
	a.writeRender(w)
}

func (a *Api) writeRender(w http.ResponseWriter) {
	encoder := json.NewEncoder(w)
	err := encoder.Encode(RenderResp{Render: a.theatre.RenderEnabled()})
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't encode render state: %s", err), http.StatusInternalServerError)
		return
	}
}
