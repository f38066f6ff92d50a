package fault

// Kind identifies the variant of an *Error.
// Kinds are string-based for debuggability. A Kind is also an error value so
// it can be used directly as an errors.Is target:
//
//	if errors.Is(err, fault.KindArgumentNull) {
//	    // handle missing argument
//	}
type Kind string

const (
	// KindException is the generic kind for wrapped native failures.
	KindException Kind = "Exception"

	// Argument errors.

	// KindArgument indicates an invalid argument.
	KindArgument Kind = "Argument"

	// KindArgumentNull indicates a required argument was nil.
	KindArgumentNull Kind = "ArgumentNull"

	// KindArgumentOutOfRange indicates an argument outside its allowed range.
	KindArgumentOutOfRange Kind = "ArgumentOutOfRange"

	// KindAggregate groups several child errors.
	KindAggregate Kind = "Aggregate"

	// Operation errors.

	// KindInvalidOperation indicates a call that is invalid for the current state.
	KindInvalidOperation Kind = "InvalidOperation"

	// KindInvalidCast indicates a failed type conversion or assertion.
	KindInvalidCast Kind = "InvalidCast"

	// KindNullReference indicates a nil dereference.
	KindNullReference Kind = "NullReference"

	// Not found errors.

	// KindNotFound is the parent of every not-found variant.
	KindNotFound Kind = "NotFound"

	// KindFileNotFound indicates a missing file.
	KindFileNotFound Kind = "FileNotFound"

	// KindDirectoryNotFound indicates a missing directory.
	KindDirectoryNotFound Kind = "DirectoryNotFound"

	// KindNotFoundOnPath indicates an executable missing from PATH.
	KindNotFoundOnPath Kind = "NotFoundOnPath"

	// Interruption errors.

	// KindTimeout indicates an operation exceeded its time limit.
	KindTimeout Kind = "Timeout"

	// KindCanceled indicates an operation was canceled.
	KindCanceled Kind = "Canceled"

	// Misuse of option and result values.

	// KindMissingValue indicates Unwrap or Expect on a None option.
	KindMissingValue Kind = "MissingValue"

	// KindWrongDiscriminant indicates Unwrap on an error result or UnwrapError on an ok one.
	KindWrongDiscriminant Kind = "WrongDiscriminant"
)

var kindParents = map[Kind]Kind{
	KindArgumentNull:       KindArgument,
	KindArgumentOutOfRange: KindArgument,
	KindFileNotFound:       KindNotFound,
	KindDirectoryNotFound:  KindNotFound,
	KindNotFoundOnPath:     KindNotFound,
}

var kindCodes = map[Kind]string{
	KindAggregate: "AggregateError",
}

// Parent returns the kind this kind specializes, or "" for root kinds.
func (k Kind) Parent() Kind {
	return kindParents[k]
}

// Specializes reports whether k equals target or is a descendant of it.
func (k Kind) Specializes(target Kind) bool {
	for cur := k; cur != ""; cur = cur.Parent() {
		if cur == target {
			return true
		}
	}
	return false
}

// Error implements error so a Kind can be an errors.Is target.
func (k Kind) Error() string {
	return string(k)
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) defaultCode() string {
	if c, ok := kindCodes[k]; ok {
		return c
	}
	return string(k)
}
