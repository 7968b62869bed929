package ai

import (
	"fmt"
	"strings"

	"nexus/internal/domain/planner"
)

const systemPrompt = `You are a sprint planning assistant for software teams. ` +
	`You break a goal down into user stories and concrete engineering tasks, ` +
	`classify each by role, and respond with structured JSON.`

func buildPrompt(projectName, goal string, memberDesignations []string) string {
	roles := make([]string, len(planner.AllRoles))
	for i, r := range planner.AllRoles {
		roles[i] = r.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s\n\nSprint goal:\n%s\n\n", projectName, goal)

	if len(memberDesignations) > 0 {
		b.WriteString("Team member designations:\n")
		for _, d := range memberDesignations {
			fmt.Fprintf(&b, "- %s\n", d)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, `Produce a sprint plan as a JSON object with this exact shape:

{
  "sprint_name": string,
  "duration_days": integer between 7 and 30,
  "stories": [
    {
      "title": string,
      "description": string,
      "story_points": integer between 0 and 20,
      "role": one of [%[1]s],
      "priority": one of ["low", "medium", "high", "critical"],
      "labels": [string],
      "tasks": [
        {
          "title": string,
          "description": string,
          "role": one of [%[1]s],
          "priority": one of ["low", "medium", "high", "critical"],
          "labels": [string]
        }
      ]
    }
  ]
}

Every story needs at least one task. Assign roles only from the listed set.`,
		strings.Join(roles, ", "))

	return b.String()
}
