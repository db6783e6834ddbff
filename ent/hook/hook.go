// Code generated by ent, DO NOT EDIT.

package hook

import (
	"context"
	"fmt"

	"satfab.io/satfab/ent"
)

// The CalendarStageFunc type is an adapter to allow the use of ordinary
// function as CalendarStage mutator.
type CalendarStageFunc func(context.Context, *ent.CalendarStageMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f CalendarStageFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.CalendarStageMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.CalendarStageMutation", m)
}

// The ElectronicsFunc type is an adapter to allow the use of ordinary
// function as Electronics mutator.
type ElectronicsFunc func(context.Context, *ent.ElectronicsMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ElectronicsFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ElectronicsMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ElectronicsMutation", m)
}

// The HardwareRequirementFunc type is an adapter to allow the use of ordinary
// function as HardwareRequirement mutator.
type HardwareRequirementFunc func(context.Context, *ent.HardwareRequirementMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f HardwareRequirementFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.HardwareRequirementMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.HardwareRequirementMutation", m)
}

// The MaterialFunc type is an adapter to allow the use of ordinary
// function as Material mutator.
type MaterialFunc func(context.Context, *ent.MaterialMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f MaterialFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.MaterialMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.MaterialMutation", m)
}

// The MaterialFunctionalCharacteristicFunc type is an adapter to allow the use of ordinary
// function as MaterialFunctionalCharacteristic mutator.
type MaterialFunctionalCharacteristicFunc func(context.Context, *ent.MaterialFunctionalCharacteristicMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f MaterialFunctionalCharacteristicFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.MaterialFunctionalCharacteristicMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.MaterialFunctionalCharacteristicMutation", m)
}

// The MaterialOperationalCharacteristicFunc type is an adapter to allow the use of ordinary
// function as MaterialOperationalCharacteristic mutator.
type MaterialOperationalCharacteristicFunc func(context.Context, *ent.MaterialOperationalCharacteristicMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f MaterialOperationalCharacteristicFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.MaterialOperationalCharacteristicMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.MaterialOperationalCharacteristicMutation", m)
}

// The PhysicalTestDataFunc type is an adapter to allow the use of ordinary
// function as PhysicalTestData mutator.
type PhysicalTestDataFunc func(context.Context, *ent.PhysicalTestDataMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f PhysicalTestDataFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.PhysicalTestDataMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.PhysicalTestDataMutation", m)
}

// The SatelliteFunc type is an adapter to allow the use of ordinary
// function as Satellite mutator.
type SatelliteFunc func(context.Context, *ent.SatelliteMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SatelliteFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SatelliteMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SatelliteMutation", m)
}

// The SatelliteOpCharacteristicFunc type is an adapter to allow the use of ordinary
// function as SatelliteOpCharacteristic mutator.
type SatelliteOpCharacteristicFunc func(context.Context, *ent.SatelliteOpCharacteristicMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SatelliteOpCharacteristicFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SatelliteOpCharacteristicMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SatelliteOpCharacteristicMutation", m)
}

// The SensorFunc type is an adapter to allow the use of ordinary
// function as Sensor mutator.
type SensorFunc func(context.Context, *ent.SensorMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SensorFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SensorMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SensorMutation", m)
}

// The StandFunc type is an adapter to allow the use of ordinary
// function as Stand mutator.
type StandFunc func(context.Context, *ent.StandMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f StandFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.StandMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.StandMutation", m)
}

// The TechnicalSpecificationFunc type is an adapter to allow the use of ordinary
// function as TechnicalSpecification mutator.
type TechnicalSpecificationFunc func(context.Context, *ent.TechnicalSpecificationMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f TechnicalSpecificationFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.TechnicalSpecificationMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.TechnicalSpecificationMutation", m)
}

// The UserFunc type is an adapter to allow the use of ordinary
// function as User mutator.
type UserFunc func(context.Context, *ent.UserMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f UserFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.UserMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.UserMutation", m)
}

// Condition is a hook condition function.
type Condition func(context.Context, ent.Mutation) bool

// And groups conditions with the AND operator.
func And(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if !first(ctx, m) || !second(ctx, m) {
			return false
		}
		for _, cond := range rest {
			if !cond(ctx, m) {
				return false
			}
		}
		return true
	}
}

// Or groups conditions with the OR operator.
func Or(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if first(ctx, m) || second(ctx, m) {
			return true
		}
		for _, cond := range rest {
			if cond(ctx, m) {
				return true
			}
		}
		return false
	}
}

// Not negates a given condition.
func Not(cond Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		return !cond(ctx, m)
	}
}

// HasOp is a condition testing mutation operation.
func HasOp(op ent.Op) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		return m.Op().Is(op)
	}
}

// HasAddedFields is a condition validating `.AddedField` on fields.
func HasAddedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.AddedField(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.AddedField(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasClearedFields is a condition validating `.FieldCleared` on fields.
func HasClearedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if exists := m.FieldCleared(field); !exists {
			return false
		}
		for _, field := range fields {
			if exists := m.FieldCleared(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasFields is a condition validating `.Field` on fields.
func HasFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.Field(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.Field(field); !exists {
				return false
			}
		}
		return true
	}
}

// If executes the given hook under condition.
//
//	hook.If(ComputeAverage, And(HasFields(...), HasAddedFields(...)))
func If(hk ent.Hook, cond Condition) ent.Hook {
	return func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if cond(ctx, m) {
				return hk(next).Mutate(ctx, m)
			}
			return next.Mutate(ctx, m)
		})
	}
}

// On executes the given hook only for the given operation.
//
//	hook.On(Log, ent.Delete|ent.Create)
func On(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, HasOp(op))
}

// Unless skips the given hook only for the given operation.
//
//	hook.Unless(Log, ent.Update|ent.UpdateOne)
func Unless(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, Not(HasOp(op)))
}

// FixedError is a hook returning a fixed error.
func FixedError(err error) ent.Hook {
	return func(ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(context.Context, ent.Mutation) (ent.Value, error) {
			return nil, err
		})
	}
}

// Reject returns a hook that rejects all operations that match op.
//
//	func (T) Hooks() []ent.Hook {
//		return []ent.Hook{
//			Reject(ent.Delete|ent.Update),
//		}
//	}
func Reject(op ent.Op) ent.Hook {
	hk := FixedError(fmt.Errorf("%s operation is not allowed", op))
	return On(hk, op)
}

// Chain acts as a list of hooks and is effectively immutable.
// Once created, it will always hold the same set of hooks in the same order.
type Chain struct {
	hooks []ent.Hook
}

// NewChain creates a new chain of hooks.
func NewChain(hooks ...ent.Hook) Chain {
	return Chain{append([]ent.Hook(nil), hooks...)}
}

// Hook chains the list of hooks and returns the final hook.
func (c Chain) Hook() ent.Hook {
	return func(mutator ent.Mutator) ent.Mutator {
		for i := len(c.hooks) - 1; i >= 0; i-- {
			mutator = c.hooks[i](mutator)
		}
		return mutator
	}
}

// Append extends a chain, adding the specified hook
// as the last ones in the mutation flow.
func (c Chain) Append(hooks ...ent.Hook) Chain {
	newHooks := make([]ent.Hook, 0, len(c.hooks)+len(hooks))
	newHooks = append(newHooks, c.hooks...)
	newHooks = append(newHooks, hooks...)
	return Chain{newHooks}
}

// Extend extends a chain, adding the specified chain
// as the last ones in the mutation flow.
func (c Chain) Extend(chain Chain) Chain {
	return c.Append(chain.hooks...)
}
