// Package orderrepo persists the order aggregate: the order row, its ordered
// assignments, its feedback and the idempotency keys of applied writes.
package orderrepo

import (
	"fmt"
	"time"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/core/domain/model/sprayer"

	"github.com/google/uuid"
)

// OrderDTO is the orders row. SessionWeek holds the ISO week of the spray
// session so weekly workloads can be counted without date arithmetic in SQL.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Status       int       `gorm:"not null;index"`
	CropType     string    `gorm:"type:varchar(255);not null"`
	Area         float64   `gorm:"not null"`
	Cost         float64   `gorm:"not null"`
	Location     string    `gorm:"type:varchar(512)"`
	Latitude     float64
	Longitude    float64
	SessionStart time.Time `gorm:"not null"`
	SessionEnd   time.Time `gorm:"not null"`
	SessionWeek  string    `gorm:"type:varchar(8);not null;index"`
	AutoAssign   bool
	Payment      *PaymentDTO `gorm:"type:text;serializer:json"`
	Version      int64       `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Assignments []AssignmentDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Feedbacks   []FeedbackDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// AssignmentDTO keeps a copy of the sprayer as it was when assigned.
type AssignmentDTO struct {
	OrderID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SprayerID         uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position          int       `gorm:"not null"`
	IsPrimary         bool      `gorm:"not null"`
	SprayerFullName   string    `gorm:"type:varchar(255);not null"`
	SprayerExpertise  int       `gorm:"not null"`
	SprayerPictureRef string    `gorm:"type:varchar(512)"`
}

func (AssignmentDTO) TableName() string {
	return "order_assignments"
}

type FeedbackDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time
}

func (FeedbackDTO) TableName() string {
	return "order_feedbacks"
}

// IdempotencyDTO records a write that has been applied under a key.
type IdempotencyDTO struct {
	IdempotencyKey uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Operation      string    `gorm:"type:varchar(64);not null"`
	CreatedAt      time.Time `gorm:"index"`
}

func (IdempotencyDTO) TableName() string {
	return "idempotency_keys"
}

// PaymentDTO is stored as a JSON document in the orders row.
type PaymentDTO struct {
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Reference string    `json:"reference,omitempty"`
	PaidAt    time.Time `json:"paidAt"`
}

// Models lists every table of the package for AutoMigrate.
func Models() []any {
	return []any{&OrderDTO{}, &AssignmentDTO{}, &FeedbackDTO{}, &IdempotencyDTO{}}
}

// SessionWeek formats the ISO week of t, e.g. "2026W43".
func SessionWeek(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%04dW%02d", year, week)
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	session := o.SpraySession()

	dto := OrderDTO{
		ID:           orderID,
		FarmerID:     o.FarmerID().Bytes(),
		Status:       int(o.Status()),
		CropType:     o.CropType(),
		Area:         o.Area(),
		Cost:         o.Cost(),
		Location:     o.Location(),
		Latitude:     o.Coordinates().Latitude(),
		Longitude:    o.Coordinates().Longitude(),
		SessionStart: session.Start(),
		SessionEnd:   session.End(),
		SessionWeek:  SessionWeek(session.Start()),
		AutoAssign:   o.AutoAssign(),
		Version:      o.Version(),
	}

	if p := o.Payment(); p != nil {
		dto.Payment = &PaymentDTO{
			Amount:    p.Amount(),
			Method:    p.Method(),
			Reference: p.Reference(),
			PaidAt:    p.PaidAt(),
		}
	}

	for i, a := range o.Assignments() {
		s := a.Sprayer()
		dto.Assignments = append(dto.Assignments, AssignmentDTO{
			OrderID:           orderID,
			SprayerID:         s.ID().Bytes(),
			Position:          i,
			IsPrimary:         a.IsPrimary(),
			SprayerFullName:   s.FullName(),
			SprayerExpertise:  int(s.Expertise()),
			SprayerPictureRef: s.PictureRef(),
		})
	}

	for _, f := range o.Feedbacks() {
		dto.Feedbacks = append(dto.Feedbacks, feedbackFromDomain(orderID, f))
	}

	return dto
}

func feedbackFromDomain(orderID uuid.UUID, f order.Feedback) FeedbackDTO {
	return FeedbackDTO{
		ID:        f.ID().Bytes(),
		OrderID:   orderID,
		AuthorID:  f.AuthorID().Bytes(),
		Rating:    f.Rating(),
		Comment:   f.Comment(),
		CreatedAt: f.CreatedAt(),
	}
}

// toDomain expects Assignments ordered by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}
	coords, err := kernel.NewCoordinates(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}
	session, err := order.NewSpraySession(dto.SessionStart, dto.SessionEnd)
	if err != nil {
		return nil, err
	}

	var payment *order.Payment
	if p := dto.Payment; p != nil {
		if payment, err = order.NewPayment(p.Amount, p.Method, p.Reference, p.PaidAt); err != nil {
			return nil, err
		}
	}

	assignments := make([]order.Assignment, 0, len(dto.Assignments))
	for _, a := range dto.Assignments {
		sprayerID, idErr := kernel.UUIDFromBytes(a.SprayerID[:])
		if idErr != nil {
			return nil, idErr
		}
		s, sErr := sprayer.NewSprayer(sprayerID, a.SprayerFullName, sprayer.Expertise(a.SprayerExpertise), a.SprayerPictureRef)
		if sErr != nil {
			return nil, sErr
		}
		assignment, aErr := order.NewAssignment(s, a.IsPrimary)
		if aErr != nil {
			return nil, aErr
		}
		assignments = append(assignments, assignment)
	}

	feedbacks := make([]order.Feedback, 0, len(dto.Feedbacks))
	for _, f := range dto.Feedbacks {
		fb, fErr := feedbackToDomain(f)
		if fErr != nil {
			return nil, fErr
		}
		feedbacks = append(feedbacks, fb)
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:          id,
		FarmerID:    farmerID,
		Status:      order.Status(dto.Status),
		CropType:    dto.CropType,
		Area:        dto.Area,
		Cost:        dto.Cost,
		Location:    dto.Location,
		Coordinates: coords,
		Session:     session,
		AutoAssign:  dto.AutoAssign,
		Assignments: assignments,
		Feedbacks:   feedbacks,
		Payment:     payment,
		Version:     dto.Version,
	})
}

func feedbackToDomain(dto FeedbackDTO) (order.Feedback, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Feedback{}, err
	}
	authorID, err := kernel.UUIDFromBytes(dto.AuthorID[:])
	if err != nil {
		return order.Feedback{}, err
	}
	return order.NewFeedback(id, authorID, dto.Rating, dto.Comment, dto.CreatedAt)
}
