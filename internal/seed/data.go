package seed

import (
	rfpdomain "github.com/Real-Streeter/liberty-command/internal/rfp/domain"
	taskdomain "github.com/Real-Streeter/liberty-command/internal/task/domain"
	teamdomain "github.com/Real-Streeter/liberty-command/internal/team/domain"
)

type memberRow struct {
	ID    string
	Name  string
	Color string
	Role  teamdomain.Role
}

type taskRow struct {
	ID        string
	ColumnID  string
	SortOrder int
	Content   string
	Owner     string
	Tag       string
	Priority  taskdomain.Priority
	Estimate  string
	DueDate   string
}

var members = []memberRow{
	{ID: "user-1", Name: "Kirk", Color: "blue", Role: teamdomain.RoleAdmin},
	{ID: "user-2", Name: "Kevin", Color: "emerald", Role: teamdomain.RoleAdmin},
	{ID: "user-3", Name: "Kirk/Kevin", Color: "purple", Role: teamdomain.RoleMember},
	{ID: "user-4", Name: "Dev Team", Color: "cyan", Role: teamdomain.RoleMember},
	{ID: "user-5", Name: "FreightSnap", Color: "amber", Role: teamdomain.RoleMember},
	{ID: "user-6", Name: "External", Color: "zinc", Role: teamdomain.RoleMember},
}

var tasks = []taskRow{
	{ID: "task-bl-1", ColumnID: "col-backlog", SortOrder: 0, Content: "Define Launch Date", Owner: "Kirk/Kevin", Tag: "Strategy", Priority: taskdomain.PriorityCritical, DueDate: "2026-02-15"},
	{ID: "task-bl-2", ColumnID: "col-backlog", SortOrder: 1, Content: "Confirm Scope", Owner: "Kirk", Tag: "Strategy", Priority: taskdomain.PriorityCritical, DueDate: "2026-02-10"},
	{ID: "task-bl-3", ColumnID: "col-backlog", SortOrder: 2, Content: "Carrier Strategy", Owner: "Kevin", Tag: "Strategy", Priority: taskdomain.PriorityCritical, DueDate: "2026-02-20"},
	{ID: "task-pr-1", ColumnID: "col-pricing", SortOrder: 0, Content: "Review Data", Owner: "Kevin", Tag: "Carrier RFP", Priority: taskdomain.PriorityStandard, Estimate: "2d", DueDate: "2026-02-05"},
	{ID: "task-pr-2", ColumnID: "col-pricing", SortOrder: 1, Content: "Lane Analysis", Owner: "Kevin", Tag: "Carrier RFP", Priority: taskdomain.PriorityStandard, Estimate: "1d", DueDate: "2026-02-08"},
	{ID: "task-pr-3", ColumnID: "col-pricing", SortOrder: 2, Content: "Compose RFP", Owner: "Kevin", Tag: "Carrier RFP", Priority: taskdomain.PriorityStandard, Estimate: "5d", DueDate: "2026-02-15"},
	{ID: "task-pr-4", ColumnID: "col-pricing", SortOrder: 3, Content: "Distribution List", Owner: "Kirk", Tag: "Carrier RFP", Priority: taskdomain.PriorityStandard, Estimate: "1d"},
	{ID: "task-pr-5", ColumnID: "col-pricing", SortOrder: 4, Content: "Distribute RFP", Owner: "Kevin", Tag: "Carrier RFP", Priority: taskdomain.PriorityStandard, Estimate: "3d"},
	{ID: "task-pr-6", ColumnID: "col-pricing", SortOrder: 5, Content: "RFP Window", Owner: "Kevin", Tag: "Carrier RFP", Priority: taskdomain.PriorityStandard, Estimate: "3w"},
	{ID: "task-pr-7", ColumnID: "col-pricing", SortOrder: 6, Content: "Analyze Responses", Owner: "Kirk/Kevin", Tag: "Carrier RFP", Priority: taskdomain.PriorityStandard, Estimate: "5d"},
	{ID: "task-pr-8", ColumnID: "col-pricing", SortOrder: 7, Content: "Selection", Owner: "Kirk/Kevin", Tag: "Carrier RFP", Priority: taskdomain.PriorityCritical, Estimate: "1d", DueDate: "2026-03-01"},
	{ID: "task-pr-9", ColumnID: "col-pricing", SortOrder: 8, Content: "Publication", Owner: "Kevin", Tag: "Carrier RFP", Priority: taskdomain.PriorityStandard, Estimate: "3d"},
	{ID: "task-pr-10", ColumnID: "col-pricing", SortOrder: 9, Content: "Kickoff", Owner: "Kirk/Kevin", Tag: "Carrier RFP", Priority: taskdomain.PriorityCritical, Estimate: "2d", DueDate: "2026-03-05"},
	{ID: "task-re-1", ColumnID: "col-re-logistics", SortOrder: 0, Content: "Meeting w/ Rodney (Jan 30)", Owner: "Kirk", Tag: "RE Logistics", Priority: taskdomain.PriorityCritical, Estimate: "Jan 30", DueDate: "2026-01-30"},
	{ID: "task-re-2", ColumnID: "col-re-logistics", SortOrder: 1, Content: "Verify Location", Owner: "Kirk", Tag: "RE Logistics", Priority: taskdomain.PriorityStandard},
	{ID: "task-re-3", ColumnID: "col-re-logistics", SortOrder: 2, Content: "Service Territory", Owner: "Kirk", Tag: "RE Logistics", Priority: taskdomain.PriorityStandard},
	{ID: "task-re-4", ColumnID: "col-re-logistics", SortOrder: 3, Content: "Pallet Rates", Owner: "Kirk", Tag: "RE Logistics", Priority: taskdomain.PriorityStandard},
	{ID: "task-re-5", ColumnID: "col-re-logistics", SortOrder: 4, Content: "Key Contacts", Owner: "Kirk", Tag: "RE Logistics", Priority: taskdomain.PriorityStandard},
	{ID: "task-tms-1", ColumnID: "col-tms", SortOrder: 0, Content: "RE User Setup", Owner: "Dev Team", Tag: "TMS Dev", Priority: taskdomain.PriorityCritical, DueDate: "2026-02-12"},
	{ID: "task-tms-2", ColumnID: "col-tms", SortOrder: 1, Content: "Dock Requirements", Owner: "Dev Team", Tag: "TMS Dev", Priority: taskdomain.PriorityStandard},
	{ID: "task-tms-3", ColumnID: "col-tms", SortOrder: 2, Content: "Ocean Cost Manifest", Owner: "Dev Team", Tag: "TMS Dev", Priority: taskdomain.PriorityStandard},
	{ID: "task-tms-4", ColumnID: "col-tms", SortOrder: 3, Content: "Dispatch Feature", Owner: "Dev Team", Tag: "TMS Dev", Priority: taskdomain.PriorityCritical, DueDate: "2026-02-18"},
	{ID: "task-tms-5", ColumnID: "col-tms", SortOrder: 4, Content: "P&L Flow", Owner: "Dev Team", Tag: "TMS Dev", Priority: taskdomain.PriorityStandard},
	{ID: "task-tms-6", ColumnID: "col-tms", SortOrder: 5, Content: "Wholesale Tax Rename", Owner: "Dev Team", Tag: "TMS Dev", Priority: taskdomain.PriorityStandard},
	{ID: "task-tms-7", ColumnID: "col-tms", SortOrder: 6, Content: "OCR Workflow", Owner: "Dev Team", Tag: "TMS Dev", Priority: taskdomain.PriorityStandard},
	{ID: "task-tms-8", ColumnID: "col-tms", SortOrder: 7, Content: "Label Creation", Owner: "Dev Team", Tag: "TMS Dev", Priority: taskdomain.PriorityStandard},
	{ID: "task-fs-1", ColumnID: "col-freightsnap", SortOrder: 0, Content: "Enable OCR", Owner: "FreightSnap", Tag: "FreightSnap", Priority: taskdomain.PriorityCritical, DueDate: "2026-02-10"},
	{ID: "task-fs-2", ColumnID: "col-freightsnap", SortOrder: 1, Content: "Deploy Parcel/Pallet/LTL tools", Owner: "FreightSnap", Tag: "FreightSnap", Priority: taskdomain.PriorityCritical, DueDate: "2026-02-15"},
	{ID: "task-fs-3", ColumnID: "col-freightsnap", SortOrder: 2, Content: "UI Flag for incomplete orders", Owner: "FreightSnap", Tag: "FreightSnap", Priority: taskdomain.PriorityStandard},
	{ID: "task-fs-4", ColumnID: "col-freightsnap", SortOrder: 3, Content: "Admin Review Flow", Owner: "FreightSnap", Tag: "FreightSnap", Priority: taskdomain.PriorityStandard},
	{ID: "task-fs-5", ColumnID: "col-freightsnap", SortOrder: 4, Content: "BOL OCR", Owner: "FreightSnap", Tag: "FreightSnap", Priority: taskdomain.PriorityCritical, DueDate: "2026-02-20"},
	{ID: "task-dr-1", ColumnID: "col-drayage", SortOrder: 0, Content: "Matson Meeting", Owner: "Kirk", Tag: "Drayage", Priority: taskdomain.PriorityCritical, DueDate: "2026-02-05"},
	{ID: "task-dr-2", ColumnID: "col-drayage", SortOrder: 1, Content: "Local Provider Meeting", Owner: "Kirk", Tag: "Drayage", Priority: taskdomain.PriorityStandard},
	{ID: "task-sc-1", ColumnID: "col-shipper-comms", SortOrder: 0, Content: "Draft Pre-launch", Owner: "Kirk", Tag: "Shipper Comms", Priority: taskdomain.PriorityStandard},
	{ID: "task-sc-2", ColumnID: "col-shipper-comms", SortOrder: 1, Content: "Tendering Instructions", Owner: "Kirk", Tag: "Shipper Comms", Priority: taskdomain.PriorityStandard},
	{ID: "task-sc-3", ColumnID: "col-shipper-comms", SortOrder: 2, Content: "Joint Messaging", Owner: "Kirk/Kevin", Tag: "Shipper Comms", Priority: taskdomain.PriorityStandard},
	{ID: "task-wt-1", ColumnID: "col-waiting", SortOrder: 0, Content: "RE Confirmation", Owner: "External", Tag: "External", Priority: taskdomain.PriorityStandard},
	{ID: "task-wt-2", ColumnID: "col-waiting", SortOrder: 1, Content: "RFP Responses", Owner: "External", Tag: "External", Priority: taskdomain.PriorityStandard},
	{ID: "task-wt-3", ColumnID: "col-waiting", SortOrder: 2, Content: "Dev Dependencies", Owner: "External", Tag: "External", Priority: taskdomain.PriorityStandard},
	{ID: "task-wt-4", ColumnID: "col-waiting", SortOrder: 3, Content: "FreightSnap Readiness", Owner: "External", Tag: "External", Priority: taskdomain.PriorityStandard},
}

var rfps = []rfpdomain.Rfp{
	{ID: "rfp-1", Name: "Carrier Direct", Carrier: "Carrier Direct LLC", Progress: 85, Status: rfpdomain.StatusFinalizing, DueDate: strPtr("2026-02-28")},
	{ID: "rfp-2", Name: "KRC Logistics", Carrier: "KRC Logistics Inc", Progress: 45, Status: rfpdomain.StatusRatesPending, DueDate: strPtr("2026-03-15")},
	{ID: "rfp-3", Name: "Central Transport", Carrier: "Central Transport Co", Progress: 12, Status: rfpdomain.StatusRequestSent, DueDate: strPtr("2026-03-20")},
}
