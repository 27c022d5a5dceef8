package dashboard

type MemberTotals struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Deceased int64 `json:"deceased"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type SectorCount struct {
	SectorID   uint   `json:"sector_id"`
	SectorName string `json:"sector_name"`
	Count      int64  `json:"count"`
}

type UpcomingBirthday struct {
	MemberID string `json:"member_id"`
	FullName string `json:"full_name"`
	Birthday string `json:"birthday"`
	TurnsAge int    `json:"turns_age"`
}

type RecentTransfer struct {
	MemberName   string `json:"member_name"`
	FromSector   string `json:"from_sector,omitempty"`
	ToSector     string `json:"to_sector"`
	TransferDate string `json:"transfer_date"`
}

type DashboardResponse struct {
	Members           MemberTotals       `json:"members"`
	MembersByStatus   []StatusCount      `json:"members_by_status"`
	MembersBySector   []SectorCount      `json:"members_by_sector"`
	ActiveFamilies    int64              `json:"active_families"`
	UpcomingBirthdays []UpcomingBirthday `json:"upcoming_birthdays"`
	RecentTransfers   []RecentTransfer   `json:"recent_transfers"`
	AttendanceRate    float64            `json:"attendance_rate"`
	GeneratedAt       string             `json:"generated_at"`
}
