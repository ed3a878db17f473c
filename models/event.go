// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// Pipeline stages at which the host dispatches events.
const (
	StagePreValidation = 10
	StagePreOperation  = 20
	StagePostOperation = 40
)

// Message names handled by the pipeline.
const (
	MessageRetrieve = "Retrieve"
	MessageCreate   = "Create"
	MessageUpdate   = "Update"
)

// Names of the entity images registered on the pipeline steps.
const (
	PreImageName  = "PreImage"
	PostImageName = "PostImage"
)

// Names of the pipeline parameters.
const (
	ParamTarget         = "Target"
	ParamBusinessEntity = "BusinessEntity"
)

// PipelineEvent is one synchronous invocation dispatched by the host runtime.
//
// InputParameters carries the Target delta for Create and Update;
// OutputParameters carries the BusinessEntity returned by Retrieve. The
// handlers mutate those entities in place.
type PipelineEvent struct {
	Stage             int                `json:"stage"`
	MessageName       string             `json:"message_name"`
	PrimaryEntityName string             `json:"primary_entity_name"`
	UserID            uuid.UUID          `json:"user_id"`
	InputParameters   map[string]*Entity `json:"input_parameters,omitempty"`
	OutputParameters  map[string]*Entity `json:"output_parameters,omitempty"`
	PreEntityImages   map[string]*Entity `json:"pre_entity_images,omitempty"`
	PostEntityImages  map[string]*Entity `json:"post_entity_images,omitempty"`
}

// Target returns the Target input parameter, or nil.
func (e *PipelineEvent) Target() *Entity {
	return e.InputParameters[ParamTarget]
}

// BusinessEntity returns the BusinessEntity output parameter, or nil.
func (e *PipelineEvent) BusinessEntity() *Entity {
	return e.OutputParameters[ParamBusinessEntity]
}

// PreImage returns the registered pre-operation image, or nil.
func (e *PipelineEvent) PreImage() *Entity {
	return e.PreEntityImages[PreImageName]
}

// PostImage returns the registered post-operation image, or nil.
func (e *PipelineEvent) PostImage() *Entity {
	return e.PostEntityImages[PostImageName]
}
