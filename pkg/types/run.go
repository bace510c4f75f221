// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Workflow identifies which pipeline produced a run record.
type Workflow string

const (
	WorkflowSummarize Workflow = "summarize"
	WorkflowThink     Workflow = "think"
)

// RunRecord describes one completed pipeline run as stored in the
// archive.
type RunRecord struct {
	// ID is the run's UUID.
	ID string `json:"id" yaml:"id"`

	// Workflow is the pipeline that ran: summarize or think.
	Workflow Workflow `json:"workflow" yaml:"workflow"`

	// Sources lists the input locations, in input order.
	Sources []string `json:"sources" yaml:"sources"`

	// Model is the model identifier used for generation.
	Model string `json:"model" yaml:"model"`

	// OutputPath is the path of the written report or mindmap file.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// CreatedAt is the completion time of the run, UTC.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
