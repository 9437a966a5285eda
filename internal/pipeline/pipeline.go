// Package pipeline runs an ordered list of checks followed by a terminal
// handler. The first failing check ends the run: no later check and no
// handler is invoked, and its error is the only outcome.
package pipeline

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Lixing-Zhang/grubdash/backend/internal/pipeline"

// Check inspects the request state and returns nil to pass or an error to stop.
// Checks may record lookups on the state for later steps but never mutate
// stored entities.
type Check[S any] func(ctx context.Context, state *S) error

// Handler performs the operation once every check has passed
type Handler[S any] func(ctx context.Context, state *S) (Result, error)

// Result is a successful outcome
type Result struct {
	Status int
	Data   any
}

// OK returns a 200 result
func OK(data any) Result {
	return Result{Status: http.StatusOK, Data: data}
}

// Created returns a 201 result
func Created(data any) Result {
	return Result{Status: http.StatusCreated, Data: data}
}

// NoContent returns a 204 result
func NoContent() Result {
	return Result{Status: http.StatusNoContent}
}

// Pipeline is a named sequence of checks ending in a handler
type Pipeline[S any] struct {
	name    string
	checks  []Check[S]
	handler Handler[S]
	tracer  trace.Tracer
}

// New builds a pipeline. Checks run in the order given.
func New[S any](name string, handler Handler[S], checks ...Check[S]) *Pipeline[S] {
	return &Pipeline[S]{
		name:    name,
		checks:  checks,
		handler: handler,
		tracer:  otel.Tracer(tracerName),
	}
}

// Name returns the pipeline name
func (p *Pipeline[S]) Name() string {
	return p.name
}

// Run executes the pipeline against state
func (p *Pipeline[S]) Run(ctx context.Context, state *S) (Result, error) {
	ctx, span := p.tracer.Start(ctx, p.name,
		trace.WithAttributes(attribute.Int("pipeline.checks", len(p.checks))))
	defer span.End()

	for i, check := range p.checks {
		if err := check(ctx, state); err != nil {
			span.SetAttributes(attribute.Int("pipeline.failed_check", i))
			if pe, ok := AsError(err); ok {
				span.SetAttributes(attribute.String("pipeline.failure_kind", pe.Kind.String()))
			}
			span.SetStatus(codes.Error, err.Error())
			return Result{}, err
		}
	}

	result, err := p.handler(ctx, state)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}
	span.SetAttributes(attribute.Int("pipeline.status", result.Status))
	return result, nil
}
