package models

import "time"

// User represents a user profile
type User struct {
	UserID              string    `json:"userID" db:"userid"`
	Username            string    `json:"username" db:"username"`
	Email               string    `json:"email" db:"email"`
	ProfilePicURL       *string   `json:"profilePicURL" db:"profilepicurl"`
	AccountType         string    `json:"accountType" db:"accounttype"`
	AccountCreationDate time.Time `json:"accountCreationDate" db:"accountcreationdate"`
}

// Submission is an activity a user added, with its first photo if any
type Submission struct {
	ActivityID   int64   `json:"activityID" db:"activityid"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	ActivityType string  `json:"activityType" db:"activitytype"`
	Location     *string `json:"location" db:"location"`
	PhotoURL     *string `json:"photoUrl" db:"photourl"`
}

// Comment is a comment on an activity together with its author
type Comment struct {
	CommentID     int64     `json:"commentID" db:"commentid"`
	UserID        string    `json:"userID" db:"userid"`
	ActivityID    int64     `json:"activityID" db:"activityid"`
	CommentText   string    `json:"commentText" db:"commenttext"`
	CommentDate   time.Time `json:"commentDate" db:"commentdate"`
	Username      string    `json:"username" db:"username"`
	ProfilePicURL *string   `json:"profilePicURL" db:"profilepicurl"`
}

// UserComment is a comment a user wrote, with the activity it belongs to
type UserComment struct {
	CommentID    int64     `json:"commentID" db:"commentid"`
	UserID       string    `json:"userID" db:"userid"`
	ActivityID   int64     `json:"activityID" db:"activityid"`
	CommentText  string    `json:"commentText" db:"commenttext"`
	CommentDate  time.Time `json:"commentDate" db:"commentdate"`
	ActivityName string    `json:"name" db:"name"`
	ActivityType string    `json:"activityType" db:"activitytype"`
}

// Event is an activity scheduled at a date and time
type Event struct {
	ActivityID    int64   `json:"activityID" db:"activityid"`
	Name          string  `json:"name" db:"name"`
	Description   string  `json:"description" db:"description"`
	Location      *string `json:"location" db:"location"`
	Organizer     *string `json:"organizer" db:"organizer"`
	AddedByUserID *string `json:"addedByUserID" db:"addedbyuserid"`
	Date          string  `json:"date" db:"date"`
	Time          string  `json:"time" db:"time"`
	Tags          string  `json:"tags" db:"tags"`
}

// RatingInfo is what a user gave an activity
type RatingInfo struct {
	Rating   int  `json:"rating"`
	HasRated bool `json:"hasRated"`
}

// SearchResult is an activity matching a free-text search
type SearchResult struct {
	ActivityID   int64   `json:"activityID" db:"activityid"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	ActivityType string  `json:"activityType" db:"activitytype"`
	Location     *string `json:"location" db:"location"`
}

// Block is a directed edge: BlockerUserID blocked BlockedUserID
type Block struct {
	BlockerUserID string `json:"blockerUserID"`
	BlockedUserID string `json:"blockedUserID"`
}
