// Package tiny provides Scope[V], a minimal fluent wrapper for chaining
// helpers on a plain value. It never fails on its own.
//
// - Of: start a scope
// - Also/When: mutation steps that keep the value
// - Let: move to a new value (free function, methods cannot add type parameters)
// - Value/Run/TakeIf: leave the scope
//
// Use package chain when the steps themselves can fail.
package tiny
