// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package prelude provides algebraic abstractions and computation contexts
// for Go generics.
//
// Values are immutable. Every operation builds a new value, and contexts
// are consumed by a terminal run operation ([State.Run], [Writer.Run],
// [Reader.Run], [Run]).
//
// # Design Philosophy
//
// Go has no higher-kinded types and methods cannot introduce type
// parameters, so prelude follows two rules:
//   - Operations that change a type parameter are free functions suffixed
//     with the context name: [MapEither], [FlatMapState], [ApWriter].
//     [Cont] keeps the unsuffixed [Bind], [Map], [Then] and [Ap].
//   - Operations that keep the type parameters are methods:
//     [State.Eval], [Reader.Local], [Writer.Censor], [Either.IsLeft].
//
// Type classes are dictionaries. A [Semigroup] or [Monoid] is an instance
// value passed explicitly, for example SumMonoid[int]() or
// SliceMonoid[string](). Optional values are fn.Option from
// github.com/lightningnetwork/lnd/fn; unit is fn.Unit.
//
// # Algebra
//
//   - [Semigroup], [Monoid]: associative combine with identity
//   - Instances: [SliceMonoid], [StringMonoid], [SumMonoid], [ProductMonoid],
//     [AllMonoid], [AnyMonoid], [FirstMonoid], [LastMonoid], [MaxMonoid],
//     [MinMonoid], [OptionMonoid], [EndoMonoid], [DualMonoid], [PairMonoid]
//   - [Concat], [Sconcat]: fold a list of values with an instance
//
// # Foldable
//
// [Foldable] needs one method, Elements, which enumerates elements in
// fold order. [FoldMap] is defined on it and the rest is derived:
//
//   - [Foldr] folds through [EndoMonoid]
//   - [Foldl] folds through [DualMonoid] of [EndoMonoid]
//   - [Foldr1], [Foldl1], [Maximum], [Minimum] return [ErrEmptyStructure]
//     when nothing is folded
//   - [Length], [IsEmpty], [Find], [ToList], [Elem], [NotElem], [Any], [All]
//
// [Slice], [Identity], [Either], [These], [Const] and [FromOption] are
// Foldable. Either folds its Right, These its That, Const nothing.
//
// # Contexts
//
//   - [Identity]: a bare value
//   - [Either]: Left or Right, right-biased
//   - [These]: This, That or Both; the monad needs a Semigroup for This
//   - [Const]: a value with a phantom type
//   - [Reader]: [Ask], [Asks], [Reader.Local], [WithReader]
//   - [Writer]: [Tell], [ListenWriter], [ListensWriter], [Writer.Censor], [PassWriter]
//   - [State]: [Get], [Put], [Gets], [Modify], [State.With]
//
// # Continuations
//
// [Cont] is the continuation monad. [Return] and [Bind] are the minimal
// definition; [Map], [Then] and [Ap] are derived.
//
//   - [CallCC]: escape to the continuation of the enclosing call
//   - [WithCont], [MapCont]: transform the continuation or the final result
//   - [Shift], [Reset]: delimited control
//
// # Stack Safety
//
// Closure-based continuations consume Go stack proportional to chain
// depth. [Expr] is the defunctionalized form: frames are data, and
// [RunExpr] evaluates them in a loop. [Bounce] turns every continuation
// call of a Cont into a [DeferFrame], and [RunContExpr] runs such a Cont
// on the trampoline.
//
// # Optics
//
//   - [Prism]: partial match with total rebuild, [ComposePrism]
//   - [Setter]: update through [Identity], [ComposeSetter]
//   - [Getter]: read through [Const], [ComposeGetter]
//
// # Logging
//
// The package logs under the [Subsystem] tag through a btclog.Logger that
// is disabled by default. Install one with [UseLogger].
package prelude
