// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/quizarcade/quizarcade/ent/predicate"
	"github.com/quizarcade/quizarcade/ent/resultevent"
	"github.com/quizarcade/quizarcade/ent/schema"
)

// ResultEventUpdate is the builder for updating ResultEvent entities.
type ResultEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResultEventMutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdate) Where(ps ...predicate.ResultEvent) *ResultEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResultEventUpdate) SetSessionID(v string) *ResultEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableSessionID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ResultEventUpdate) SetKind(v string) *ResultEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableKind(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *ResultEventUpdate) SetLessonID(v string) *ResultEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableLessonID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *ResultEventUpdate) SetTotal(v int) *ResultEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableTotal(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ResultEventUpdate) AddTotal(v int) *ResultEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResultEventUpdate) SetCorrect(v int) *ResultEventUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableCorrect(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *ResultEventUpdate) AddCorrect(v int) *ResultEventUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetIncorrect sets the "incorrect" field.
func (_u *ResultEventUpdate) SetIncorrect(v int) *ResultEventUpdate {
	_u.mutation.ResetIncorrect()
	_u.mutation.SetIncorrect(v)
	return _u
}

// SetNillableIncorrect sets the "incorrect" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableIncorrect(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetIncorrect(*v)
	}
	return _u
}

// AddIncorrect adds value to the "incorrect" field.
func (_u *ResultEventUpdate) AddIncorrect(v int) *ResultEventUpdate {
	_u.mutation.AddIncorrect(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *ResultEventUpdate) SetSkipped(v int) *ResultEventUpdate {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableSkipped(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *ResultEventUpdate) AddSkipped(v int) *ResultEventUpdate {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *ResultEventUpdate) SetScore(v int64) *ResultEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableScore(v *int64) *ResultEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResultEventUpdate) AddScore(v int64) *ResultEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *ResultEventUpdate) SetAccuracy(v float64) *ResultEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableAccuracy(v *float64) *ResultEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *ResultEventUpdate) AddAccuracy(v float64) *ResultEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ResultEventUpdate) SetDurationSecs(v int) *ResultEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableDurationSecs(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ResultEventUpdate) AddDurationSecs(v int) *ResultEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ResultEventUpdate) SetCompleted(v bool) *ResultEventUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableCompleted(v *bool) *ResultEventUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetAssistsUsed sets the "assists_used" field.
func (_u *ResultEventUpdate) SetAssistsUsed(v []string) *ResultEventUpdate {
	_u.mutation.SetAssistsUsed(v)
	return _u
}

// AppendAssistsUsed appends value to the "assists_used" field.
func (_u *ResultEventUpdate) AppendAssistsUsed(v []string) *ResultEventUpdate {
	_u.mutation.AppendAssistsUsed(v)
	return _u
}

// ClearAssistsUsed clears the value of the "assists_used" field.
func (_u *ResultEventUpdate) ClearAssistsUsed() *ResultEventUpdate {
	_u.mutation.ClearAssistsUsed()
	return _u
}

// SetItems sets the "items" field.
func (_u *ResultEventUpdate) SetItems(v []schema.ItemOutcomeRecord) *ResultEventUpdate {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *ResultEventUpdate) AppendItems(v []schema.ItemOutcomeRecord) *ResultEventUpdate {
	_u.mutation.AppendItems(v)
	return _u
}

// ClearItems clears the value of the "items" field.
func (_u *ResultEventUpdate) ClearItems() *ResultEventUpdate {
	_u.mutation.ClearItems()
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdate) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := resultevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := resultevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(resultevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(resultevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(resultevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(resultevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(resultevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(resultevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(resultevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Incorrect(); ok {
		_spec.SetField(resultevent.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrect(); ok {
		_spec.AddField(resultevent.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(resultevent.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(resultevent.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(resultevent.FieldScore, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(resultevent.FieldScore, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(resultevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(resultevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(resultevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(resultevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(resultevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AssistsUsed(); ok {
		_spec.SetField(resultevent.FieldAssistsUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssistsUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resultevent.FieldAssistsUsed, value)
		})
	}
	if _u.mutation.AssistsUsedCleared() {
		_spec.ClearField(resultevent.FieldAssistsUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(resultevent.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resultevent.FieldItems, value)
		})
	}
	if _u.mutation.ItemsCleared() {
		_spec.ClearField(resultevent.FieldItems, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultEventUpdateOne is the builder for updating a single ResultEvent entity.
type ResultEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ResultEventUpdateOne) SetSessionID(v string) *ResultEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableSessionID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ResultEventUpdateOne) SetKind(v string) *ResultEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableKind(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *ResultEventUpdateOne) SetLessonID(v string) *ResultEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableLessonID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *ResultEventUpdateOne) SetTotal(v int) *ResultEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableTotal(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ResultEventUpdateOne) AddTotal(v int) *ResultEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResultEventUpdateOne) SetCorrect(v int) *ResultEventUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableCorrect(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *ResultEventUpdateOne) AddCorrect(v int) *ResultEventUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetIncorrect sets the "incorrect" field.
func (_u *ResultEventUpdateOne) SetIncorrect(v int) *ResultEventUpdateOne {
	_u.mutation.ResetIncorrect()
	_u.mutation.SetIncorrect(v)
	return _u
}

// SetNillableIncorrect sets the "incorrect" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableIncorrect(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetIncorrect(*v)
	}
	return _u
}

// AddIncorrect adds value to the "incorrect" field.
func (_u *ResultEventUpdateOne) AddIncorrect(v int) *ResultEventUpdateOne {
	_u.mutation.AddIncorrect(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *ResultEventUpdateOne) SetSkipped(v int) *ResultEventUpdateOne {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableSkipped(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *ResultEventUpdateOne) AddSkipped(v int) *ResultEventUpdateOne {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *ResultEventUpdateOne) SetScore(v int64) *ResultEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableScore(v *int64) *ResultEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResultEventUpdateOne) AddScore(v int64) *ResultEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *ResultEventUpdateOne) SetAccuracy(v float64) *ResultEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableAccuracy(v *float64) *ResultEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *ResultEventUpdateOne) AddAccuracy(v float64) *ResultEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ResultEventUpdateOne) SetDurationSecs(v int) *ResultEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableDurationSecs(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ResultEventUpdateOne) AddDurationSecs(v int) *ResultEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ResultEventUpdateOne) SetCompleted(v bool) *ResultEventUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableCompleted(v *bool) *ResultEventUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetAssistsUsed sets the "assists_used" field.
func (_u *ResultEventUpdateOne) SetAssistsUsed(v []string) *ResultEventUpdateOne {
	_u.mutation.SetAssistsUsed(v)
	return _u
}

// AppendAssistsUsed appends value to the "assists_used" field.
func (_u *ResultEventUpdateOne) AppendAssistsUsed(v []string) *ResultEventUpdateOne {
	_u.mutation.AppendAssistsUsed(v)
	return _u
}

// ClearAssistsUsed clears the value of the "assists_used" field.
func (_u *ResultEventUpdateOne) ClearAssistsUsed() *ResultEventUpdateOne {
	_u.mutation.ClearAssistsUsed()
	return _u
}

// SetItems sets the "items" field.
func (_u *ResultEventUpdateOne) SetItems(v []schema.ItemOutcomeRecord) *ResultEventUpdateOne {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *ResultEventUpdateOne) AppendItems(v []schema.ItemOutcomeRecord) *ResultEventUpdateOne {
	_u.mutation.AppendItems(v)
	return _u
}

// ClearItems clears the value of the "items" field.
func (_u *ResultEventUpdateOne) ClearItems() *ResultEventUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdateOne) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdateOne) Where(ps ...predicate.ResultEvent) *ResultEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultEventUpdateOne) Select(field string, fields ...string) *ResultEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResultEvent entity.
func (_u *ResultEventUpdateOne) Save(ctx context.Context) (*ResultEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdateOne) SaveX(ctx context.Context) *ResultEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := resultevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := resultevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdateOne) sqlSave(ctx context.Context) (_node *ResultEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResultEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resultevent.FieldID)
		for _, f := range fields {
			if !resultevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resultevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(resultevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(resultevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(resultevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(resultevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(resultevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(resultevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(resultevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Incorrect(); ok {
		_spec.SetField(resultevent.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrect(); ok {
		_spec.AddField(resultevent.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(resultevent.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(resultevent.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(resultevent.FieldScore, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(resultevent.FieldScore, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(resultevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(resultevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(resultevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(resultevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(resultevent.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AssistsUsed(); ok {
		_spec.SetField(resultevent.FieldAssistsUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssistsUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resultevent.FieldAssistsUsed, value)
		})
	}
	if _u.mutation.AssistsUsedCleared() {
		_spec.ClearField(resultevent.FieldAssistsUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(resultevent.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resultevent.FieldItems, value)
		})
	}
	if _u.mutation.ItemsCleared() {
		_spec.ClearField(resultevent.FieldItems, field.TypeJSON)
	}
	_node = &ResultEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
