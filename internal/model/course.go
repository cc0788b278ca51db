package model

// Course carries a denormalized InstructorName so listings never join
// against users. The name is stamped from the instructor's stored
// record at creation time, never taken from the request.
type Course struct {
	UUIDBase
	Title          string `gorm:"size:255;not null" json:"title"`
	Description    string `gorm:"type:text" json:"description"`
	VideoURL       string `gorm:"size:512" json:"videoUrl"`
	Category       string `gorm:"size:100;index" json:"category"`
	InstructorID   uint   `gorm:"index" json:"instructorId"`
	InstructorName string `gorm:"size:100" json:"instructorName"`
}

func (Course) TableName() string {
	return "courses"
}
