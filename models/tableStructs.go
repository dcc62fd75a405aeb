package models

import "exam-question-categorizer/classifier"

type Year struct {
	Id        int64  `json:"id"`
	YearValue string `json:"year_value" xorm:"varchar(4) notnull"`
}

type ExamType struct {
	Id   int64  `json:"id"`
	Name string `json:"name" xorm:"varchar(80) notnull"`
}

type Subject struct {
	Id         int64  `json:"id"`
	Name       string `json:"name" xorm:"varchar(80) notnull"`
	ExamTypeId int64  `json:"exam_type_id"`
}

type Keyword struct {
	Id        int64  `json:"id"`
	Value     string `json:"value" xorm:"varchar(80) notnull"`
	SubjectId int64  `json:"subject_id" xorm:"index"`
}

type Question struct {
	Id         int64  `json:"id"`
	Text       string `json:"text" xorm:"varchar(200) notnull"`
	ExamYearId int64  `json:"exam_year_id" xorm:"notnull"`
	ExamTypeId int64  `json:"exam_type_id" xorm:"notnull"`
}

type User struct {
	Id       int64  `json:"id"`
	Username string `json:"username" xorm:"varchar(80) notnull unique"`
	Password string `json:"-" xorm:"varchar(120) notnull"`
	Role     string `json:"role" xorm:"varchar(20) notnull"`
}

//转换为分类器输入
func ClassifierSubjects(subjects []Subject) []classifier.Subject {
	out := make([]classifier.Subject, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, classifier.Subject{ID: s.Id, Name: s.Name})
	}
	return out
}

func ClassifierKeywords(keywords []Keyword) []classifier.Keyword {
	out := make([]classifier.Keyword, 0, len(keywords))
	for _, k := range keywords {
		out = append(out, classifier.Keyword{ID: k.Id, Value: k.Value, SubjectID: k.SubjectId})
	}
	return out
}
