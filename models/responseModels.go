package models

import "exam-question-categorizer/classifier"

const (
	UserID = "UserID"
	Role   = "Role"
)

const (
	RoleAnonymous = "anonymous"
	RoleMember    = "member"
	RoleAdmin     = "admin"
)

const Success = "success"
const Failure = "failure"
const Retry = "retry please"
const Welcome = "Welcome to the exam question categorization API!"
const LoginFailed = "login failed"
const UserExists = "username already taken"
const NoPermission = "permission denied"
const QuestionNotFound = "question not found"
const NoCategories = "no categories found for this question"

type Response struct {
	Status string      `json:"status"`
	Result interface{} `json:"result,omitempty"`
}

type LoginInfo struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CategorizeResult struct {
	QuestionId   int64                 `json:"question_id"`
	QuestionText string                `json:"question_text"`
	Categories   []classifier.Category `json:"categories"`
}
