package domain

type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomFull      RoomStatus = "full"
)

type Room struct {
	ID       string     `json:"id"`
	Number   string     `json:"number" validate:"required"`
	Capacity int        `json:"capacity" validate:"required,gt=0"`
	Price    float64    `json:"price" validate:"gte=0"`
	Occupied int        `json:"occupied" validate:"gte=0"`
	Status   RoomStatus `json:"status" validate:"required,oneof=available full"`
}

// DerivedStatus reports the status implied by occupancy. Occupancy only ever
// grows through request approval, so a room that reports full stays full
// until an admin edits it back.
func (r Room) DerivedStatus() RoomStatus {
	if r.Occupied >= r.Capacity {
		return RoomFull
	}
	return RoomAvailable
}

func (r Room) Validate() error {
	return validateStruct(r)
}

// RoomData is the caller-supplied part of a new room; occupancy always
// starts at zero.
type RoomData struct {
	Number   string     `validate:"required"`
	Capacity int        `validate:"required,gt=0"`
	Price    float64    `validate:"gte=0"`
	Status   RoomStatus `validate:"omitempty,oneof=available full"`
}

func (d RoomData) Validate() error {
	return validateStruct(d)
}
