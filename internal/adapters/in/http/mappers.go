package http

import (
	"time"

	"spraying/internal/core/application/sessions"
	"spraying/internal/core/application/usecases/queries"
	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/model/sprayer"
	"spraying/internal/core/domain/services"
	"spraying/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func toSprayer(s sprayer.Sprayer) servers.Sprayer {
	return servers.Sprayer{
		Id:         s.ID().Bytes(),
		FullName:   s.FullName(),
		Expertise:  s.Expertise().String(),
		PictureRef: optional(s.PictureRef()),
	}
}

func toFeedback(f order.Feedback) servers.Feedback {
	return servers.Feedback{
		Id:        f.ID().Bytes(),
		AuthorId:  f.AuthorID().Bytes(),
		Rating:    f.Rating(),
		Comment:   optional(f.Comment()),
		CreatedAt: f.CreatedAt(),
	}
}

func toOrder(o *order.Order) servers.Order {
	assignments := make([]servers.Assignment, 0, len(o.Assignments()))
	for _, a := range o.Assignments() {
		assignments = append(assignments, servers.Assignment{
			Sprayer:   toSprayer(a.Sprayer()),
			IsPrimary: a.IsPrimary(),
		})
	}
	feedbacks := make([]servers.Feedback, 0, len(o.Feedbacks()))
	for _, f := range o.Feedbacks() {
		feedbacks = append(feedbacks, toFeedback(f))
	}

	resp := servers.Order{
		Id:              o.ID().Bytes(),
		FarmerId:        o.FarmerID().Bytes(),
		Status:          o.Status().String(),
		CropType:        o.CropType(),
		Area:            o.Area(),
		Cost:            o.Cost(),
		Location:        optional(o.Location()),
		Latitude:        o.Coordinates().Latitude(),
		Longitude:       o.Coordinates().Longitude(),
		Schedule:        o.SpraySession().String(),
		SessionStart:    o.SpraySession().Start(),
		SessionEnd:      o.SpraySession().End(),
		DurationMinutes: int(o.SpraySession().Duration() / time.Minute),
		AutoAssign:      o.AutoAssign(),
		Assignments:     assignments,
		Feedbacks:       feedbacks,
		Version:         o.Version(),
	}
	if p := o.Payment(); p != nil {
		resp.Payment = &servers.Payment{
			Amount:    p.Amount(),
			Method:    p.Method(),
			Reference: optional(p.Reference()),
			PaidAt:    p.PaidAt(),
		}
	}
	return resp
}

func toCapabilities(actions []services.Action) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.String())
	}
	return out
}

func toOrderDetails(r queries.GetOrderQueryResponse) servers.OrderDetails {
	resp := servers.OrderDetails{
		Order:        toOrder(r.Order),
		Capabilities: toCapabilities(r.Capabilities),
	}
	if r.EditorID != nil {
		id := openapi_types.UUID(r.EditorID.Bytes())
		resp.EditorId = &id
	}
	return resp
}

func toOrderSummary(r queries.ListOrdersQueryResponse) servers.OrderSummary {
	resp := servers.OrderSummary{
		Id:           r.ID.Bytes(),
		FarmerId:     r.FarmerID.Bytes(),
		Status:       r.Status.String(),
		CropType:     r.CropType,
		Area:         r.Area,
		Cost:         r.Cost,
		Location:     optional(r.Location),
		SessionStart: r.SessionStart,
		SessionEnd:   r.SessionEnd,
		AutoAssign:   r.AutoAssign,
		Version:      r.Version,
	}
	if r.PrimarySprayerID != nil {
		id := openapi_types.UUID(r.PrimarySprayerID.Bytes())
		resp.PrimarySprayerId = &id
	}
	return resp
}

// toEditSession lists the pool bucket by bucket, beginners first.
func toEditSession(v sessions.View) servers.EditSession {
	entries := make([]servers.PoolEntry, 0, v.Pool.Len())
	for _, e := range sprayer.Expertises() {
		for _, entry := range v.Pool.Bucket(e) {
			pe := servers.PoolEntry{Sprayer: toSprayer(entry.Sprayer), CountUnknown: entry.CountUnknown}
			if !entry.CountUnknown {
				count := entry.WeeklyOrderCount
				pe.WeeklyOrderCount = &count
			}
			entries = append(entries, pe)
		}
	}
	removed := make([]servers.Sprayer, 0, len(v.Removed))
	for _, s := range v.Removed {
		removed = append(removed, toSprayer(s))
	}
	staged := v.StagedFields
	if staged == nil {
		staged = []string{}
	}
	values := make(map[string]string, len(v.StagedValues))
	for k, val := range v.StagedValues {
		values[string(k)] = val
	}

	return servers.EditSession{
		OrderId:      v.OrderID.Bytes(),
		OwnerId:      v.OwnerID.Bytes(),
		StartedAt:    v.StartedAt,
		Order:        toOrder(v.Order),
		Pool:         entries,
		Removed:      removed,
		StagedFields: staged,
		StagedValues: values,
		CommitKey:    v.CommitKey.Bytes(),
	}
}
