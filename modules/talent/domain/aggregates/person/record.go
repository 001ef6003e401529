package person

import (
	"errors"

	"github.com/iota-uz/talent-import/modules/talent/domain/level"
)

var ErrMissingSeq = errors.New("序号 is required")

// Category is one of the six fixed ability groups.
type Category string

const (
	CategoryValues       Category = "价值观"
	CategoryCompetency   Category = "胜任能力"
	CategoryProfessional Category = "专业技能"
	CategoryPersonality  Category = "人格特质"
	CategoryKnowledge    Category = "知识技能"
	CategoryRequirements Category = "能力要求"
)

// Categories lists the ability groups in import order.
func Categories() []Category {
	return []Category{
		CategoryValues,
		CategoryCompetency,
		CategoryProfessional,
		CategoryPersonality,
		CategoryKnowledge,
		CategoryRequirements,
	}
}

// Record is one person entry of the source document.
type Record struct {
	Seq       *int64    `json:"序号" yaml:"序号"`
	Basic     BasicInfo `json:"基本信息" yaml:"基本信息"`
	Work      Work      `json:"工作经历" yaml:"工作经历"`
	Education Education `json:"教育背景" yaml:"教育背景"`

	Values       AbilityGroup `json:"价值观" yaml:"价值观"`
	Competency   AbilityGroup `json:"胜任能力" yaml:"胜任能力"`
	Professional AbilityGroup `json:"专业技能" yaml:"专业技能"`
	Personality  AbilityGroup `json:"人格特质" yaml:"人格特质"`
	Knowledge    AbilityGroup `json:"知识技能" yaml:"知识技能"`
	Requirements AbilityGroup `json:"能力要求" yaml:"能力要求"`
}

type BasicInfo struct {
	Name        Scalar `json:"姓名" yaml:"姓名"`
	Gender      Scalar `json:"性别" yaml:"性别"`
	Age         Scalar `json:"年龄" yaml:"年龄"`
	Hobby       Scalar `json:"身体+爱好" yaml:"身体+爱好"`
	Personality Scalar `json:"性格" yaml:"性格"`
	Family      Scalar `json:"家庭" yaml:"家庭"`
}

type Work struct {
	YearsInIndustry Scalar `json:"同行业年限" yaml:"同行业年限"`
	JobHops         Scalar `json:"跳槽次数" yaml:"跳槽次数"`
	PreviousJob     Scalar `json:"曾担任工作" yaml:"曾担任工作"`
}

type Education struct {
	Degree Scalar `json:"学历" yaml:"学历"`
	School Scalar `json:"学校" yaml:"学校"`
	Major  Scalar `json:"专业" yaml:"专业"`
}

// Group returns the ability group stored under c.
func (r *Record) Group(c Category) AbilityGroup {
	switch c {
	case CategoryValues:
		return r.Values
	case CategoryCompetency:
		return r.Competency
	case CategoryProfessional:
		return r.Professional
	case CategoryPersonality:
		return r.Personality
	case CategoryKnowledge:
		return r.Knowledge
	case CategoryRequirements:
		return r.Requirements
	default:
		return nil
	}
}

// AbilityCount is the number of ability entries across all six groups.
func (r *Record) AbilityCount() int {
	n := 0
	for _, c := range Categories() {
		n += len(r.Group(c))
	}
	return n
}

type Ability struct {
	Name  string
	Value level.Value
}
