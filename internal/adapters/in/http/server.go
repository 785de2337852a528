package http

import (
	"context"
	"log/slog"
	"net/http"

	"spraying/internal/core/application/usecases/commands"
	"spraying/internal/core/application/usecases/queries"
	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/ports"
	"spraying/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	CreateSprayer     commands.CreateSprayerCommandHandler
	TransitionOrder   commands.TransitionOrderCommandHandler
	BeginEdit         commands.BeginEditCommandHandler
	SetField          commands.SetFieldCommandHandler
	AddSprayer        commands.AddSprayerCommandHandler
	RemoveSprayer     commands.RemoveSprayerCommandHandler
	SetPrimarySprayer commands.SetPrimarySprayerCommandHandler
	ToggleAutoAssign  commands.ToggleAutoAssignCommandHandler
	CancelEdit        commands.CancelEditCommandHandler
	CommitEdit        commands.CommitEditCommandHandler
	SubmitFeedback    commands.SubmitFeedbackCommandHandler

	GetOrder       queries.GetOrderQueryHandler
	ListOrders     queries.ListOrdersQueryHandler
	GetEditSession queries.GetEditSessionQueryHandler
	ListSprayers   queries.ListSprayersQueryHandler
}

// Server implements servers.ServerInterface on top of the application
// command and query handlers.
type Server struct {
	h        Handlers
	identity ports.IdentityProvider
	logger   *slog.Logger
}

func NewServer(h Handlers, identity ports.IdentityProvider, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{h: h, identity: identity, logger: logger.With("component", "http")}
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(c echo.Context, params servers.ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(deref(params.Status), deref(params.Limit), deref(params.Offset))
	if err != nil {
		return s.fail(c, err)
	}

	rows, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]servers.OrderSummary, 0, len(rows))
	for _, r := range rows {
		response = append(response, toOrderSummary(r))
	}
	return c.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders. The caller is the farmer unless
// the body names one.
func (s *Server) CreateOrder(c echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx := c.Request().Context()
	farmerID, err := s.farmerFor(ctx, body.FarmerId)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), farmerID,
		body.CropType, body.Area, body.Cost, deref(body.Location),
		body.Latitude, body.Longitude, body.Schedule, deref(body.AutoAssign),
	)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.CreateOrder.Handle(ctx, cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, servers.Created{Id: cmd.OrderID().Bytes()})
}

func (s *Server) farmerFor(ctx context.Context, requested *openapi_types.UUID) (kernel.UUID, error) {
	if requested != nil {
		return toKernelID(*requested)
	}
	a, err := s.identity.CurrentActor(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}
	return a.ID(), nil
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(c echo.Context, orderID servers.OrderId) error {
	id, err := toKernelID(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	resp, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderDetails(resp))
}

// TransitionOrder handles POST /api/v1/orders/{orderId}/transitions. Like
// feedback, a retry carrying the same idempotency key replays the first result.
func (s *Server) TransitionOrder(c echo.Context, orderID servers.OrderId) error {
	var body servers.TransitionOrderJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id, err := toKernelID(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	target, err := order.ParseStatus(body.Target)
	if err != nil {
		return s.fail(c, err)
	}
	var key *kernel.UUID
	if body.IdempotencyKey != nil {
		k, err := toKernelID(*body.IdempotencyKey)
		if err != nil {
			return s.fail(c, err)
		}
		key = &k
	}
	cmd, err := commands.NewTransitionOrderCommand(id, target, key)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.TransitionOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(o))
}

// SubmitFeedback handles POST /api/v1/orders/{orderId}/feedbacks. A client
// that retries should resend the same idempotency key.
func (s *Server) SubmitFeedback(c echo.Context, orderID servers.OrderId) error {
	var body servers.SubmitFeedbackJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id, err := toKernelID(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	key := kernel.NewUUID()
	if body.IdempotencyKey != nil {
		if key, err = toKernelID(*body.IdempotencyKey); err != nil {
			return s.fail(c, err)
		}
	}
	cmd, err := commands.NewSubmitFeedbackCommand(id, body.Rating, deref(body.Comment), key)
	if err != nil {
		return s.fail(c, err)
	}

	f, err := s.h.SubmitFeedback.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toFeedback(f))
}

// BeginEdit handles POST /api/v1/orders/{orderId}/edit.
func (s *Server) BeginEdit(c echo.Context, orderID servers.OrderId) error {
	id, err := toKernelID(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewBeginEditCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.h.BeginEdit.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toEditSession(view))
}

// GetEditSession handles GET /api/v1/orders/{orderId}/edit.
func (s *Server) GetEditSession(c echo.Context, orderID servers.OrderId) error {
	id, err := toKernelID(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetEditSessionQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.h.GetEditSession.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toEditSession(view))
}

// CancelEdit handles DELETE /api/v1/orders/{orderId}/edit.
func (s *Server) CancelEdit(c echo.Context, orderID servers.OrderId) error {
	id, err := toKernelID(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCancelEditCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.CancelEdit.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(o))
}

// CommitEdit handles POST /api/v1/orders/{orderId}/edit/commit.
func (s *Server) CommitEdit(c echo.Context, orderID servers.OrderId) error {
	id, err := toKernelID(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCommitEditCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.CommitEdit.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(o))
}

// SetField handles PUT /api/v1/orders/{orderId}/edit/fields/{field}.
func (s *Server) SetField(c echo.Context, orderID servers.OrderId, field servers.SetFieldParamsField) error {
	var body servers.SetFieldJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id, err := toKernelID(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewSetFieldCommand(id, string(field), body.Value)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.h.SetField.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toEditSession(view))
}

// AddSprayer handles POST /api/v1/orders/{orderId}/edit/sprayers.
func (s *Server) AddSprayer(c echo.Context, orderID servers.OrderId) error {
	var body servers.AddSprayerJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id, sprayerID, err := toKernelIDs(orderID, body.SprayerId)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewAddSprayerCommand(id, sprayerID)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.h.AddSprayer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toEditSession(view))
}

// RemoveSprayer handles DELETE /api/v1/orders/{orderId}/edit/sprayers/{sprayerId}.
func (s *Server) RemoveSprayer(c echo.Context, orderID servers.OrderId, sprayerID openapi_types.UUID) error {
	id, sid, err := toKernelIDs(orderID, sprayerID)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewRemoveSprayerCommand(id, sid)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.h.RemoveSprayer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toEditSession(view))
}

// SetPrimarySprayer handles PUT /api/v1/orders/{orderId}/edit/primary.
func (s *Server) SetPrimarySprayer(c echo.Context, orderID servers.OrderId) error {
	var body servers.SetPrimarySprayerJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id, sprayerID, err := toKernelIDs(orderID, body.SprayerId)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewSetPrimarySprayerCommand(id, sprayerID)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.h.SetPrimarySprayer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toEditSession(view))
}

// ToggleAutoAssign handles POST /api/v1/orders/{orderId}/edit/auto-assign.
func (s *Server) ToggleAutoAssign(c echo.Context, orderID servers.OrderId) error {
	id, err := toKernelID(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewToggleAutoAssignCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.h.ToggleAutoAssign.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toEditSession(view))
}

// ListSprayers handles GET /api/v1/sprayers.
func (s *Server) ListSprayers(c echo.Context, params servers.ListSprayersParams) error {
	query, err := queries.NewListSprayersQuery(deref(params.Expertise))
	if err != nil {
		return s.fail(c, err)
	}

	rows, err := s.h.ListSprayers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]servers.Sprayer, 0, len(rows))
	for _, r := range rows {
		response = append(response, servers.Sprayer{
			Id:         r.ID.Bytes(),
			FullName:   r.FullName,
			Expertise:  r.Expertise.String(),
			PictureRef: optional(r.PictureRef),
		})
	}
	return c.JSON(http.StatusOK, response)
}

// CreateSprayer handles POST /api/v1/sprayers.
func (s *Server) CreateSprayer(c echo.Context) error {
	var body servers.CreateSprayerJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateSprayerCommand(kernel.NewUUID(), body.FullName, body.Expertise, deref(body.PictureRef))
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.CreateSprayer.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, servers.Created{Id: cmd.SprayerID().Bytes()})
}

func toKernelIDs(a, b openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	first, err := toKernelID(a)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	second, err := toKernelID(b)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return first, second, nil
}
