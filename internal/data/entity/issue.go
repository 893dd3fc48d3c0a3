package entity

import (
	"time"

	"github.com/google/uuid"
)

type Issue struct {
	BaseSimple
	UserID          uuid.UUID  `db:"user_id"`
	Issue           string     `db:"issue"`
	Description     string     `db:"description"`
	AdminRemark     *string    `db:"admin_remark"`
	AdminRemarkDate *time.Time `db:"admin_remark_date"`
}

func (i *Issue) Answered() bool {
	return i.AdminRemark != nil && *i.AdminRemark != ""
}

type IssueDetail struct {
	Issue
	UserName  string
	UserEmail string
}
