// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quizarcade/quizarcade/ent/resultevent"
	"github.com/quizarcade/quizarcade/ent/schema"
)

// ResultEventCreate is the builder for creating a ResultEvent entity.
type ResultEventCreate struct {
	config
	mutation *ResultEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ResultEventCreate) SetSequence(v int64) *ResultEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ResultEventCreate) SetTimestamp(v time.Time) *ResultEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableTimestamp(v *time.Time) *ResultEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ResultEventCreate) SetSessionID(v string) *ResultEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ResultEventCreate) SetKind(v string) *ResultEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *ResultEventCreate) SetLessonID(v string) *ResultEventCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableLessonID(v *string) *ResultEventCreate {
	if v != nil {
		_c.SetLessonID(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *ResultEventCreate) SetTotal(v int) *ResultEventCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableTotal(v *int) *ResultEventCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ResultEventCreate) SetCorrect(v int) *ResultEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableCorrect(v *int) *ResultEventCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetIncorrect sets the "incorrect" field.
func (_c *ResultEventCreate) SetIncorrect(v int) *ResultEventCreate {
	_c.mutation.SetIncorrect(v)
	return _c
}

// SetNillableIncorrect sets the "incorrect" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableIncorrect(v *int) *ResultEventCreate {
	if v != nil {
		_c.SetIncorrect(*v)
	}
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *ResultEventCreate) SetSkipped(v int) *ResultEventCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableSkipped(v *int) *ResultEventCreate {
	if v != nil {
		_c.SetSkipped(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *ResultEventCreate) SetScore(v int64) *ResultEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableScore(v *int64) *ResultEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *ResultEventCreate) SetAccuracy(v float64) *ResultEventCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableAccuracy(v *float64) *ResultEventCreate {
	if v != nil {
		_c.SetAccuracy(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *ResultEventCreate) SetDurationSecs(v int) *ResultEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableDurationSecs(v *int) *ResultEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *ResultEventCreate) SetCompleted(v bool) *ResultEventCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetAssistsUsed sets the "assists_used" field.
func (_c *ResultEventCreate) SetAssistsUsed(v []string) *ResultEventCreate {
	_c.mutation.SetAssistsUsed(v)
	return _c
}

// SetItems sets the "items" field.
func (_c *ResultEventCreate) SetItems(v []schema.ItemOutcomeRecord) *ResultEventCreate {
	_c.mutation.SetItems(v)
	return _c
}

// Mutation returns the ResultEventMutation object of the builder.
func (_c *ResultEventCreate) Mutation() *ResultEventMutation {
	return _c.mutation
}

// Save creates the ResultEvent in the database.
func (_c *ResultEventCreate) Save(ctx context.Context) (*ResultEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResultEventCreate) SaveX(ctx context.Context) *ResultEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResultEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := resultevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		v := resultevent.DefaultLessonID
		_c.mutation.SetLessonID(v)
	}
	if _, ok := _c.mutation.Total(); !ok {
		v := resultevent.DefaultTotal
		_c.mutation.SetTotal(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := resultevent.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.Incorrect(); !ok {
		v := resultevent.DefaultIncorrect
		_c.mutation.SetIncorrect(v)
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		v := resultevent.DefaultSkipped
		_c.mutation.SetSkipped(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := resultevent.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		v := resultevent.DefaultAccuracy
		_c.mutation.SetAccuracy(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := resultevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResultEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ResultEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ResultEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ResultEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := resultevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ResultEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := resultevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "ResultEvent.lesson_id"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "ResultEvent.total"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ResultEvent.correct"`)}
	}
	if _, ok := _c.mutation.Incorrect(); !ok {
		return &ValidationError{Name: "incorrect", err: errors.New(`ent: missing required field "ResultEvent.incorrect"`)}
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`ent: missing required field "ResultEvent.skipped"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ResultEvent.score"`)}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "ResultEvent.accuracy"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "ResultEvent.duration_secs"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "ResultEvent.completed"`)}
	}
	return nil
}

func (_c *ResultEventCreate) sqlSave(ctx context.Context) (*ResultEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResultEventCreate) createSpec() (*ResultEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ResultEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resultevent.Table, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(resultevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(resultevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(resultevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(resultevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(resultevent.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(resultevent.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(resultevent.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Incorrect(); ok {
		_spec.SetField(resultevent.FieldIncorrect, field.TypeInt, value)
		_node.Incorrect = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(resultevent.FieldSkipped, field.TypeInt, value)
		_node.Skipped = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(resultevent.FieldScore, field.TypeInt64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(resultevent.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(resultevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(resultevent.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.AssistsUsed(); ok {
		_spec.SetField(resultevent.FieldAssistsUsed, field.TypeJSON, value)
		_node.AssistsUsed = value
	}
	if value, ok := _c.mutation.Items(); ok {
		_spec.SetField(resultevent.FieldItems, field.TypeJSON, value)
		_node.Items = value
	}
	return _node, _spec
}

// ResultEventCreateBulk is the builder for creating many ResultEvent entities in bulk.
type ResultEventCreateBulk struct {
	config
	err      error
	builders []*ResultEventCreate
}

// Save creates the ResultEvent entities in the database.
func (_c *ResultEventCreateBulk) Save(ctx context.Context) ([]*ResultEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResultEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResultEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResultEventCreateBulk) SaveX(ctx context.Context) []*ResultEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
