// Package core contains the plumbing shared by the asynchronous helpers in
// rop: context-carried worker and process options, and single-value channel
// helpers used to deliver async results.
//
// It holds no Option or Result logic of its own.
package core
