package domain

import "time"

type Notice struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Important bool      `json:"important"`
	Timestamp time.Time `json:"timestamp"`
}

type NoticeInput struct {
	Title     string `validate:"required"`
	Content   string `validate:"required"`
	Important bool
}

func (i NoticeInput) Validate() error {
	return validateStruct(i)
}

// NoticeUpdate carries a partial notice; nil fields are left untouched and
// the creation timestamp is always preserved.
type NoticeUpdate struct {
	Title     *string
	Content   *string
	Important *bool
}
