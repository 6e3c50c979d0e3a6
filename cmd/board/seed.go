package main

import (
	"github.com/nhle/architect-board/internal/board"
	"github.com/nhle/architect-board/internal/model"
)

type seedTask struct {
	Title       string
	Description string
	Status      string
	Priority    model.Priority
	// StartOffset is days from today; Days is the task length.
	StartOffset int
	Days        int
	Hours       float64
	Tags        []string
}

var sampleTasks = []seedTask{
	{
		Title:       "Initial Site Analysis",
		Description: "Conduct comprehensive site analysis including topography, climate, and zoning regulations",
		Status:      model.StatusCompleted,
		Priority:    model.PriorityHigh,
		StartOffset: -30,
		Days:        14,
		Hours:       40,
		Tags:        []string{"Research", "Site Analysis"},
	},
	{
		Title:       "Conceptual Design Development",
		Description: "Create initial design concepts and sketches based on client requirements",
		Status:      model.StatusDesign,
		Priority:    model.PriorityCritical,
		StartOffset: -15,
		Days:        19,
		Hours:       80,
		Tags:        []string{"Design", "Concept"},
	},
	{
		Title:       "Structural Engineering Coordination",
		Description: "Coordinate with structural engineers for load calculations and foundation design",
		Status:      model.StatusDevelopment,
		Priority:    model.PriorityHigh,
		StartOffset: -11,
		Days:        20,
		Hours:       60,
		Tags:        []string{"Engineering", "Coordination"},
	},
	{
		Title:       "3D Visualization & Rendering",
		Description: "Create photorealistic 3D renderings for client presentation",
		Status:      model.StatusDevelopment,
		Priority:    model.PriorityMedium,
		StartOffset: -6,
		Days:        20,
		Hours:       50,
		Tags:        []string{"Visualization", "3D"},
	},
	{
		Title:       "Building Permit Documentation",
		Description: "Prepare complete documentation package for building permit submission",
		Status:      model.StatusReview,
		Priority:    model.PriorityHigh,
		StartOffset: 0,
		Days:        19,
		Hours:       70,
		Tags:        []string{"Documentation", "Permits"},
	},
	{
		Title:       "MEP Systems Design",
		Description: "Design mechanical, electrical, and plumbing systems",
		Status:      model.StatusBacklog,
		Priority:    model.PriorityMedium,
		StartOffset: 9,
		Days:        31,
		Hours:       90,
		Tags:        []string{"MEP", "Engineering"},
	},
	{
		Title:       "Interior Design Specifications",
		Description: "Develop detailed interior design specifications and material selections",
		Status:      model.StatusBacklog,
		Priority:    model.PriorityLow,
		StartOffset: 14,
		Days:        36,
		Hours:       45,
		Tags:        []string{"Interior", "Design"},
	},
}

// seedSampleData fills an empty board with an example architecture project
// scheduled around today.
func seedSampleData(tasks *board.TaskStore, today model.Date) error {
	for _, s := range sampleTasks {
		start := today.AddDays(s.StartOffset)
		end := start.AddDays(s.Days)
		_, err := tasks.Create(model.TaskInput{
			Title:          s.Title,
			Description:    s.Description,
			Status:         s.Status,
			Priority:       s.Priority,
			StartDate:      &start,
			EndDate:        &end,
			EstimatedHours: s.Hours,
			Tags:           s.Tags,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
