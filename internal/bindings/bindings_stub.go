//go:build !cgo || windows

package bindings

// Stub implementations for non-CGO builds or Windows. These allow the package
// to compile but report ErrNotBuilt from Init, which is the only way to
// obtain a handle.

func Init() (Handle, error) { return 0, ErrNotBuilt }

func Release(Handle) {}

func Signature() string { return "" }

func Add(Handle, int32) {}

func Assume(Handle, int32) {}

func Solve(Handle) int { return 0 }

func Val(Handle, int32) int32 { return 0 }

func Failed(Handle, int32) bool { return false }

func Constrain(Handle, int32) {}

func ConstraintFailed(Handle) bool { return false }

func Status(Handle) int { return 0 }

func Vars(Handle) int32 { return 0 }

func Active(Handle) int64 { return 0 }

func Irredundant(Handle) int64 { return 0 }

func Simplify(Handle) int { return 0 }

func Freeze(Handle, int32) {}

func Melt(Handle, int32) {}

func Frozen(Handle, int32) bool { return false }

func SetOption(Handle, string, int32) bool { return false }

func Limit(Handle, string, int32) bool { return false }

func Configure(Handle, string) bool { return false }

func ReadDimacs(Handle, string, bool) (int32, error) { return 0, ErrNotBuilt }

func WriteDimacs(Handle, string, int32) error { return ErrNotBuilt }

func SetTerminate(Handle, func() bool) {}

func ClearTerminate(Handle) {}

func SetLearn(Handle, int32, func([]int32)) {}

func ClearLearn(Handle) {}
