package model

// Question is a course discussion thread. UserName is a snapshot of
// the author's stored name at post time. Replies are append-only and
// returned inline, oldest first.
type Question struct {
	UUIDBase
	CourseID string  `gorm:"type:varchar(36);index;not null" json:"courseId"`
	UserID   uint    `gorm:"index" json:"userId"`
	UserName string  `gorm:"size:100" json:"userName"`
	Text     string  `gorm:"type:text;not null" json:"text"`
	Replies  []Reply `gorm:"foreignKey:QuestionID" json:"replies"`
}

func (Question) TableName() string {
	return "questions"
}

// Reply belongs to exactly one question and is immutable once created.
// UserRole snapshots the author's role at post time.
type Reply struct {
	UUIDBase
	QuestionID string   `gorm:"type:varchar(36);index;not null" json:"-"`
	UserID     uint     `gorm:"index" json:"userId"`
	UserName   string   `gorm:"size:100" json:"userName"`
	UserRole   UserRole `gorm:"size:20" json:"userRole"`
	Text       string   `gorm:"type:text;not null" json:"text"`
}

func (Reply) TableName() string {
	return "replies"
}
