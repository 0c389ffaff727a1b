package domain

import (
	"time"

	"github.com/google/uuid"
)

// Thread is a post in the thread table. A nil ThreadReplyThreadID marks a
// top-level thread; otherwise the thread is a reply to the referenced thread.
// ThreadID and ThreadDatetime are assigned by the storage layer on insert;
// caller-supplied values are ignored.
type Thread struct {
	ThreadID            uuid.UUID  `json:"threadId" gorm:"column:thread_id;type:uuid;primary_key"`
	ThreadProfileID     uuid.UUID  `json:"threadProfileId" gorm:"column:thread_profile_id;type:uuid;not null;index" validate:"required"`
	ThreadReplyThreadID *uuid.UUID `json:"threadReplyThreadId" gorm:"column:thread_reply_thread_id;type:uuid;index"`
	ThreadContent       string     `json:"threadContent" gorm:"column:thread_content;size:255;not null" validate:"required,max=255"`
	ThreadDatetime      time.Time  `json:"threadDatetime" gorm:"column:thread_datetime;not null"`
	ThreadImageURL      *string    `json:"threadImageUrl" gorm:"column:thread_image_url;size:255" validate:"omitempty,url,max=255"`

	// Associations used for schema generation only. Deleting a thread
	// cascades to its reply subtree; replies to a vanished parent would be
	// unreachable through every read path.
	Author  *Profile `json:"-" gorm:"foreignKey:ThreadProfileID;references:ProfileID"`
	Replies []Thread `json:"-" gorm:"foreignKey:ThreadReplyThreadID;references:ThreadID;constraint:OnDelete:CASCADE"`
}

func (Thread) TableName() string { return "thread" }

// IsTopLevel reports whether the thread is a root post rather than a reply.
func (t *Thread) IsTopLevel() bool { return t.ThreadReplyThreadID == nil }
