package delivery

import "agriai/pkg/domain"

const (
	StatusCreated   = "created"
	StatusInTransit = "in_transit"
)

// DemoTrackingID is the record present at startup.
const DemoTrackingID domain.TrackingID = "DEMO001"

// Stage is one milestone of a delivery.
type Stage struct {
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// Record is the tracked state of one delivery.
type Record struct {
	TrackingID  domain.TrackingID
	Status      string
	Stages      []Stage
	Origin      string
	Destination string
}

// Upsert is the input for creating or replacing a record. A nil Stages
// means the client did not send any; an empty TrackingID asks for one to
// be generated.
type Upsert struct {
	TrackingID  domain.TrackingID
	Status      string
	Stages      []Stage
	Origin      string
	Destination string
}

// DefaultStages is the progression given to records created without one.
func DefaultStages() []Stage {
	return []Stage{
		{Name: "Order confirmed", Done: true},
		{Name: "Dispatched", Done: false},
		{Name: "In transit", Done: false},
		{Name: "Delivered", Done: false},
	}
}

func demoRecord() *Record {
	return &Record{
		TrackingID: DemoTrackingID,
		Status:     StatusInTransit,
		Stages: []Stage{
			{Name: "Order confirmed", Done: true},
			{Name: "Dispatched", Done: true},
			{Name: "In transit", Done: true},
			{Name: "Delivered", Done: false},
		},
		Origin:      "Farm A, Punjab",
		Destination: "Market, Delhi",
	}
}
