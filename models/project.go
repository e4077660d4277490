package models

import "time"

// ProjectType discriminates the three kinds of engagements the studio tracks.
// Only the wedding variant owns tasks; consumers must switch on Type rather
// than probe for field presence.
type ProjectType string

const (
	ProjectWedding   ProjectType = "wedding"
	ProjectStudio    ProjectType = "studio"
	ProjectCorporate ProjectType = "corporate"
)

// ProjectStatus is the lifecycle state shown on the dashboard. "en_retard" is
// also recomputed from dates by the stats package; the stored value is what
// the Kanban board last set.
type ProjectStatus string

const (
	StatusEnCours  ProjectStatus = "en_cours"
	StatusEnRetard ProjectStatus = "en_retard"
	StatusTermine  ProjectStatus = "termine"
	StatusAVenir   ProjectStatus = "a_venir"
)

const (
	CountryFrance   = "fr"
	CountryCameroon = "cm"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Formula is the priced service package attached to a wedding project.
type Formula struct {
	Type      string `json:"type"` // photo_video | photo | video
	HasTeaser bool   `json:"has_teaser"`
	HasAlbum  bool   `json:"has_album"`
	Name      string `json:"name"`
}

// Company describes the client on a corporate project.
type Company struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Position string `json:"position"`
}

// CorporateDeliverables lists what a corporate engagement must produce.
type CorporateDeliverables struct {
	Photos         bool `json:"photos"`
	Video          bool `json:"video"`
	Streaming      bool `json:"streaming"`
	Prints         bool `json:"prints"`
	NumberOfPhotos int  `json:"number_of_photos"`
	VideoDuration  int  `json:"video_duration"`
}

// Project is a tagged union over Type: the common columns are always
// meaningful, the variant columns only for the matching Type.
type Project struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Type         ProjectType   `json:"type" gorm:"type:varchar(16);not null;index"`
	Couple       string        `json:"couple" gorm:"not null"`
	Date         time.Time     `json:"date" gorm:"not null;index"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Country      string        `json:"country" gorm:"type:varchar(2);not null"`
	DeliveryDays int           `json:"delivery_days" gorm:"not null"`
	Status       ProjectStatus `json:"status" gorm:"type:varchar(16);default:en_cours"`
	Notes        string        `json:"notes"`
	Price        float64       `json:"price"`
	Location     string        `json:"location"`
	Priority     string        `json:"priority" gorm:"type:varchar(8);default:medium"`
	SeasonID     string        `json:"season_id"`

	// Wedding variant
	WeddingType string  `json:"wedding_type,omitempty" gorm:"type:varchar(16)"` // french | cameroonian
	Formula     Formula `json:"formula,omitempty" gorm:"embedded;embeddedPrefix:formula_"`
	Tasks       []Task  `json:"tasks,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`

	// Studio variant
	SessionType string   `json:"session_type,omitempty" gorm:"type:varchar(32)"`
	HDPhotos    int      `json:"hd_photos,omitempty"`
	WebPhotos   int      `json:"web_photos,omitempty"`
	Backdrop    string   `json:"backdrop,omitempty"`
	Props       []string `json:"props,omitempty" gorm:"serializer:json"`
	Duration    int      `json:"duration,omitempty"` // minutes
	WithMakeup  bool     `json:"with_makeup,omitempty"`

	// Corporate variant
	EventType    string                `json:"event_type,omitempty" gorm:"type:varchar(32)"`
	Company      Company               `json:"company,omitempty" gorm:"embedded;embeddedPrefix:company_"`
	Attendees    int                   `json:"attendees,omitempty"`
	Requirements []string              `json:"requirements,omitempty" gorm:"serializer:json"`
	Deliverables CorporateDeliverables `json:"deliverables,omitempty" gorm:"embedded;embeddedPrefix:deliverable_"`

	Documents   []Document    `json:"documents,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Tags        []Tag         `json:"tags,omitempty" gorm:"many2many:project_tags;constraint:OnDelete:CASCADE"`
	ActivityLog []ActivityLog `json:"activity_log,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeliveryDate is the contractual deadline: event date plus the delivery
// window.
func (p *Project) DeliveryDate() time.Time {
	return p.Date.AddDate(0, 0, p.DeliveryDays)
}
