// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/fracdiv/ent/diagnosisevent"
	"github.com/abhisek/fracdiv/ent/predicate"
)

// DiagnosisEventUpdate is the builder for updating DiagnosisEvent entities.
type DiagnosisEventUpdate struct {
	config
	hooks    []Hook
	mutation *DiagnosisEventMutation
}

// Where appends a list predicates to the DiagnosisEventUpdate builder.
func (_u *DiagnosisEventUpdate) Where(ps ...predicate.DiagnosisEvent) *DiagnosisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DiagnosisEventUpdate) SetSessionID(v string) *DiagnosisEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableSessionID(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetProblemText sets the "problem_text" field.
func (_u *DiagnosisEventUpdate) SetProblemText(v string) *DiagnosisEventUpdate {
	_u.mutation.SetProblemText(v)
	return _u
}

// SetNillableProblemText sets the "problem_text" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableProblemText(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetProblemText(*v)
	}
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *DiagnosisEventUpdate) SetLearnerAnswer(v string) *DiagnosisEventUpdate {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableLearnerAnswer(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *DiagnosisEventUpdate) SetCategory(v string) *DiagnosisEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableCategory(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetMisconceptionID sets the "misconception_id" field.
func (_u *DiagnosisEventUpdate) SetMisconceptionID(v string) *DiagnosisEventUpdate {
	_u.mutation.SetMisconceptionID(v)
	return _u
}

// SetNillableMisconceptionID sets the "misconception_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableMisconceptionID(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetMisconceptionID(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DiagnosisEventUpdate) SetConfidence(v float64) *DiagnosisEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableConfidence(v *float64) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DiagnosisEventUpdate) AddConfidence(v float64) *DiagnosisEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetClassifier sets the "classifier" field.
func (_u *DiagnosisEventUpdate) SetClassifier(v string) *DiagnosisEventUpdate {
	_u.mutation.SetClassifier(v)
	return _u
}

// SetNillableClassifier sets the "classifier" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableClassifier(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetClassifier(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *DiagnosisEventUpdate) SetReasoning(v string) *DiagnosisEventUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *DiagnosisEventUpdate) SetNillableReasoning(v *string) *DiagnosisEventUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// Mutation returns the DiagnosisEventMutation object of the builder.
func (_u *DiagnosisEventUpdate) Mutation() *DiagnosisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagnosisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagnosisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := diagnosisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemText(); ok {
		if err := diagnosisevent.ProblemTextValidator(v); err != nil {
			return &ValidationError{Name: "problem_text", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.problem_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerAnswer(); ok {
		if err := diagnosisevent.LearnerAnswerValidator(v); err != nil {
			return &ValidationError{Name: "learner_answer", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.learner_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := diagnosisevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.category": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosisevent.Table, diagnosisevent.Columns, sqlgraph.NewFieldSpec(diagnosisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(diagnosisevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemText(); ok {
		_spec.SetField(diagnosisevent.FieldProblemText, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(diagnosisevent.FieldLearnerAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(diagnosisevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.MisconceptionID(); ok {
		_spec.SetField(diagnosisevent.FieldMisconceptionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(diagnosisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(diagnosisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Classifier(); ok {
		_spec.SetField(diagnosisevent.FieldClassifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(diagnosisevent.FieldReasoning, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagnosisEventUpdateOne is the builder for updating a single DiagnosisEvent entity.
type DiagnosisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagnosisEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *DiagnosisEventUpdateOne) SetSessionID(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableSessionID(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetProblemText sets the "problem_text" field.
func (_u *DiagnosisEventUpdateOne) SetProblemText(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetProblemText(v)
	return _u
}

// SetNillableProblemText sets the "problem_text" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableProblemText(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetProblemText(*v)
	}
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *DiagnosisEventUpdateOne) SetLearnerAnswer(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableLearnerAnswer(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *DiagnosisEventUpdateOne) SetCategory(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableCategory(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetMisconceptionID sets the "misconception_id" field.
func (_u *DiagnosisEventUpdateOne) SetMisconceptionID(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetMisconceptionID(v)
	return _u
}

// SetNillableMisconceptionID sets the "misconception_id" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableMisconceptionID(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetMisconceptionID(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DiagnosisEventUpdateOne) SetConfidence(v float64) *DiagnosisEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableConfidence(v *float64) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DiagnosisEventUpdateOne) AddConfidence(v float64) *DiagnosisEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetClassifier sets the "classifier" field.
func (_u *DiagnosisEventUpdateOne) SetClassifier(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetClassifier(v)
	return _u
}

// SetNillableClassifier sets the "classifier" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableClassifier(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetClassifier(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *DiagnosisEventUpdateOne) SetReasoning(v string) *DiagnosisEventUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *DiagnosisEventUpdateOne) SetNillableReasoning(v *string) *DiagnosisEventUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// Mutation returns the DiagnosisEventMutation object of the builder.
func (_u *DiagnosisEventUpdateOne) Mutation() *DiagnosisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiagnosisEventUpdate builder.
func (_u *DiagnosisEventUpdateOne) Where(ps ...predicate.DiagnosisEvent) *DiagnosisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagnosisEventUpdateOne) Select(field string, fields ...string) *DiagnosisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiagnosisEvent entity.
func (_u *DiagnosisEventUpdateOne) Save(ctx context.Context) (*DiagnosisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisEventUpdateOne) SaveX(ctx context.Context) *DiagnosisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagnosisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := diagnosisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemText(); ok {
		if err := diagnosisevent.ProblemTextValidator(v); err != nil {
			return &ValidationError{Name: "problem_text", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.problem_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerAnswer(); ok {
		if err := diagnosisevent.LearnerAnswerValidator(v); err != nil {
			return &ValidationError{Name: "learner_answer", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.learner_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := diagnosisevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "DiagnosisEvent.category": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisEventUpdateOne) sqlSave(ctx context.Context) (_node *DiagnosisEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosisevent.Table, diagnosisevent.Columns, sqlgraph.NewFieldSpec(diagnosisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiagnosisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagnosisevent.FieldID)
		for _, f := range fields {
			if !diagnosisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != diagnosisevent.FieldID {
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
		_spec.SetField(diagnosisevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProblemText(); ok {
		_spec.SetField(diagnosisevent.FieldProblemText, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(diagnosisevent.FieldLearnerAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(diagnosisevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.MisconceptionID(); ok {
		_spec.SetField(diagnosisevent.FieldMisconceptionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(diagnosisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(diagnosisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Classifier(); ok {
		_spec.SetField(diagnosisevent.FieldClassifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(diagnosisevent.FieldReasoning, field.TypeString, value)
	}
	_node = &DiagnosisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
