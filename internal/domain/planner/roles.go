// Package planner holds the AI sprint planning domain: the draft plan value
// object produced by the generate phase, the closed role set and the
// designation-matching heuristic that suggests assignees.
package planner

import "fmt"

// Role is one of the fixed skill categories the model is asked to classify
// work into.
type Role string

const (
	RoleUI        Role = "UI"
	RoleBackend   Role = "Backend"
	RoleQA        Role = "QA"
	RoleDevOps    Role = "DevOps"
	RoleFullStack Role = "Full-Stack"
	RoleDesign    Role = "Design"
	RoleData      Role = "Data"
	RoleMobile    Role = "Mobile"
)

// AllRoles is the closed set, in the order presented to the model.
var AllRoles = []Role{
	RoleUI, RoleBackend, RoleQA, RoleDevOps,
	RoleFullStack, RoleDesign, RoleData, RoleMobile,
}

// roleKeywords maps each role to designation keywords used by the matcher.
var roleKeywords = map[Role][]string{
	RoleUI:        {"frontend", "front-end", "react", "ui", "css", "web"},
	RoleBackend:   {"backend", "back-end", "api", "server", "go", "java", "database"},
	RoleQA:        {"qa", "test", "quality", "automation", "sdet"},
	RoleDevOps:    {"devops", "infrastructure", "cloud", "kubernetes", "sre", "platform"},
	RoleFullStack: {"full stack", "fullstack", "full-stack", "generalist"},
	RoleDesign:    {"design", "designer", "figma", "ux", "visual"},
	RoleData:      {"data", "analytics", "machine learning", "ml", "etl"},
	RoleMobile:    {"mobile", "ios", "android", "flutter", "react native"},
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleKeywords[r]
	return ok
}

// Keywords returns the designation keywords associated with the role.
func (r Role) Keywords() []string {
	kw := roleKeywords[r]
	out := make([]string, len(kw))
	copy(out, kw)
	return out
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
