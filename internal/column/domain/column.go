package domain

import "time"

// BacklogColumnID is where new tasks land when no column is given.
const BacklogColumnID = "col-backlog"

// Column is a board column. Columns are static configuration; end users
// never create or delete them.
type Column struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	SortOrder int       `json:"-" gorm:"not null;default:0"` // Display order on the board
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Column) TableName() string {
	return "columns"
}

// DefaultColumns is the board layout every installation starts with.
func DefaultColumns() []Column {
	return []Column{
		{ID: BacklogColumnID, Title: "Backlog", Icon: "Package", Color: "slate", SortOrder: 0},
		{ID: "col-pricing", Title: "Pricing (RFP)", Icon: "DollarSign", Color: "emerald", SortOrder: 1},
		{ID: "col-re-logistics", Title: "RE Logistics", Icon: "Truck", Color: "amber", SortOrder: 2},
		{ID: "col-tms", Title: "TMS / HIFA Dev", Icon: "Code", Color: "purple", SortOrder: 3},
		{ID: "col-freightsnap", Title: "FreightSnap", Icon: "Camera", Color: "cyan", SortOrder: 4},
		{ID: "col-drayage", Title: "Drayage", Icon: "Ship", Color: "indigo", SortOrder: 5},
		{ID: "col-shipper-comms", Title: "Shipper Comms", Icon: "MessageSquare", Color: "rose", SortOrder: 6},
		{ID: "col-waiting", Title: "Waiting (External)", Icon: "Clock", Color: "zinc", SortOrder: 7},
	}
}
