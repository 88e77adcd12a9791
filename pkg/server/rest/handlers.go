package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"lintang/penaltyroute/pkg/server"
	"lintang/penaltyroute/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type NavigationService interface {
	ShortestPath(ctx context.Context, srcLat, srcLon float64,
		dstLat float64, dstLon float64) (service.RouteResult, error)
	ShortestPathBetweenPlaces(ctx context.Context, from, to string) (service.RouteResult, error)
	Places() []service.Place
}

type NavigationHandler struct {
	svc          NavigationService
	promeMetrics *metrics
	validate     *validator.Validate
	trans        ut.Translator
}

func NavigatorRouter(r *chi.Mux, svc NavigationService, m *metrics) {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	handler := &NavigationHandler{svc: svc, promeMetrics: m, validate: validate, trans: trans}

	r.Group(func(r chi.Router) {
		r.Route("/api/navigations", func(r chi.Router) {
			r.Post("/shortest-path", handler.shortestPath)
			r.Post("/shortest-path-places", handler.shortestPathBetweenPlaces)
			r.Get("/places", handler.places)
		})
	})
}

// ShortestPathRequest model info
//
//	@Description	request body untuk shortest path query antara 2 koordinat
type ShortestPathRequest struct {
	SrcLat float64 `json:"src_lat" validate:"required,lt=90,gt=-90"`
	SrcLon float64 `json:"src_lon" validate:"required,lt=180,gt=-180"`
	DstLat float64 `json:"dst_lat" validate:"required,lt=90,gt=-90"`
	DstLon float64 `json:"dst_lon" validate:"required,lt=180,gt=-180"`
}

func (s *ShortestPathRequest) Bind(r *http.Request) error {
	return nil
}

// PlacesRouteRequest model info
//
//	@Description	request body untuk shortest path query antara 2 lokasi bernama
type PlacesRouteRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

func (s *PlacesRouteRequest) Bind(r *http.Request) error {
	return nil
}

// PlacesResponse model info
//
//	@Description	daftar lokasi yang bisa dipilih
type PlacesResponse struct {
	Places []service.Place `json:"places"`
}

// shortestPath
//
//	@Summary		shortest path query antara 2 koordinat dengan penalti jalan tertentu.
//	@Description	shortest path query antara 2 koordinat. setiap segmen yang melewati jalan yang dipenalti (default margonda) ditambah penalti.
//	@Tags			navigations
//	@Param			body	body	ShortestPathRequest	true	"request body query shortest path antara 2 koordinat"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/shortest-path [post]
//	@Success		200	{object}	service.RouteResult
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) shortestPath(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	if err := h.validate.Struct(*data); err != nil {
		render.Render(w, r, ErrValidation(err, translateError(err, h.trans)))
		return
	}

	res, err := h.svc.ShortestPath(r.Context(), data.SrcLat, data.SrcLon, data.DstLat, data.DstLon)
	h.countQuery(err)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, res)
}

// shortestPathBetweenPlaces
//
//	@Summary		shortest path query antara 2 lokasi bernama.
//	@Description	shortest path query antara 2 lokasi dari daftar /navigations/places.
//	@Tags			navigations
//	@Param			body	body	PlacesRouteRequest	true	"request body query shortest path antara 2 lokasi"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/shortest-path-places [post]
//	@Success		200	{object}	service.RouteResult
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) shortestPathBetweenPlaces(w http.ResponseWriter, r *http.Request) {
	data := &PlacesRouteRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	if err := h.validate.Struct(*data); err != nil {
		render.Render(w, r, ErrValidation(err, translateError(err, h.trans)))
		return
	}

	res, err := h.svc.ShortestPathBetweenPlaces(r.Context(), data.From, data.To)
	h.countQuery(err)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, res)
}

// places
//
//	@Summary		daftar lokasi bernama.
//	@Tags			navigations
//	@Produce		application/json
//	@Router			/navigations/places [get]
//	@Success		200	{object}	PlacesResponse
func (h *NavigationHandler) places(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &PlacesResponse{Places: h.svc.Places()})
}

func (h *NavigationHandler) countQuery(err error) {
	if h.promeMetrics == nil {
		return
	}
	h.promeMetrics.RouteQueryCount.WithLabelValues(strconv.FormatBool(err == nil)).Inc()
}

// ErrResponse model info
//
//	@Description	model untuk error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	statusText := ""
	switch getStatusCode(err) {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusInternalServerError:
		statusText = "Internal server error."
	case http.StatusConflict:
		statusText = "Resource conflict."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: getStatusCode(err),
		StatusText:     statusText,
		ErrorText:      err.Error(),
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var ierr *server.Error
	if !errors.As(err, &ierr) {
		return http.StatusInternalServerError
	}
	switch ierr.Code() {
	case server.ErrInternalServerError:
		return http.StatusInternalServerError
	case server.ErrNotFound:
		return http.StatusNotFound
	case server.ErrConflict:
		return http.StatusConflict
	case server.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return nil
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
