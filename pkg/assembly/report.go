package assembly

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Report is the verdict for one inspected item.
type Report struct {
	id        uuid.UUID
	createdAt time.Time
	index     int
	item      Item
	err       error
	inspected bool
}

func Good(index int, item Item) Report {
	return Report{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		index:     index,
		item:      item,
		inspected: true,
	}
}

func Defective(index int, item Item, err error) Report {
	return Report{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		index:     index,
		item:      item,
		err:       err,
		inspected: true,
	}
}

func (r Report) Id() uuid.UUID {
	return r.id
}

func (r Report) CreatedAt() time.Time {
	return r.createdAt
}

func (r Report) Index() int {
	return r.index
}

func (r Report) Item() Item {
	return r.item
}

func (r Report) Err() error {
	return r.err
}

func (r Report) IsGood() bool {
	return r.inspected && r.err == nil
}

// IsEmpty is true for the zero Report returned when nothing was inspected.
func (r Report) IsEmpty() bool {
	return !r.inspected
}

func (r Report) Defects() []error {
	return GetErrors(r.err)
}

func (r Report) String() string {
	if r.IsEmpty() {
		return "no item"
	}
	if r.IsGood() {
		return fmt.Sprintf("item %d good: %s", r.index, r.item)
	}

	msgs := make([]string, 0)
	for _, d := range r.Defects() {
		msgs = append(msgs, d.Error())
	}
	return fmt.Sprintf("item %d bad: %s: %s", r.index, r.item, strings.Join(msgs, "; "))
}
