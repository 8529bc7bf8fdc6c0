// Package langitems detects lang items.
//
// Lang items are declarations that represent concepts intrinsic to the
// language itself: contracts that mark builtin capabilities (freeze,
// send, sized), contracts behind operators (add, index, eq), and
// functions the compiler calls directly (allocation, failure paths,
// program start). A declaration opts in with a `@lang("...")`
// annotation; this package binds each canonical name to the declaration
// that carries it, across the current unit and all dependency units.
package langitems

// LangItem indexes the closed catalog of known lang-item kinds.
type LangItem uint32

const (
	FreezeTraitItem LangItem = iota
	SendTraitItem
	SizedTraitItem

	DropTraitItem

	AddTraitItem
	AddAssignTraitItem
	SubTraitItem
	SubAssignTraitItem
	MulTraitItem
	MulAssignTraitItem
	DivTraitItem
	DivAssignTraitItem
	RemTraitItem
	RemAssignTraitItem
	NegTraitItem
	NotTraitItem
	BitXorTraitItem
	BitXorAssignTraitItem
	BitAndTraitItem
	BitAndAssignTraitItem
	BitOrTraitItem
	BitOrAssignTraitItem
	ShlTraitItem
	ShlAssignTraitItem
	ShrTraitItem
	ShrAssignTraitItem
	IndexTraitItem

	EqTraitItem
	OrdTraitItem

	StrEqFnItem
	UniqStrEqFnItem
	FailFnItem
	FailBoundsCheckFnItem
	ExchangeMallocFnItem
	ClosureExchangeMallocFnItem
	ExchangeFreeFnItem
	MallocFnItem
	FreeFnItem
	BorrowAsImmFnItem
	BorrowAsMutFnItem
	ReturnToMutFnItem
	CheckNotBorrowedFnItem
	StrDupUniqFnItem
	RecordBorrowFnItem
	UnrecordBorrowFnItem

	StartFnItem

	TyDescStructItem
	TyVisitorTraitItem
	OpaqueStructItem

	EventLoopFactoryItem

	TypeIDItem

	// ItemCount is the size of the catalog.
	ItemCount
)

// langItemNames is the single source of truth for canonical names.
// Both ItemName and the name index derive from it, so the two cannot
// drift apart.
var langItemNames = [ItemCount]string{
	FreezeTraitItem: "freeze",
	SendTraitItem:   "send",
	SizedTraitItem:  "sized",

	DropTraitItem: "drop",

	AddTraitItem:          "add",
	AddAssignTraitItem:    "add_assign",
	SubTraitItem:          "sub",
	SubAssignTraitItem:    "sub_assign",
	MulTraitItem:          "mul",
	MulAssignTraitItem:    "mul_assign",
	DivTraitItem:          "div",
	DivAssignTraitItem:    "div_assign",
	RemTraitItem:          "rem",
	RemAssignTraitItem:    "rem_assign",
	NegTraitItem:          "neg",
	NotTraitItem:          "not",
	BitXorTraitItem:       "bitxor",
	BitXorAssignTraitItem: "bitxor_assign",
	BitAndTraitItem:       "bitand",
	BitAndAssignTraitItem: "bitand_assign",
	BitOrTraitItem:        "bitor",
	BitOrAssignTraitItem:  "bitor_assign",
	ShlTraitItem:          "shl",
	ShlAssignTraitItem:    "shl_assign",
	ShrTraitItem:          "shr",
	ShrAssignTraitItem:    "shr_assign",
	IndexTraitItem:        "index",

	EqTraitItem:  "eq",
	OrdTraitItem: "ord",

	StrEqFnItem:                 "str_eq",
	UniqStrEqFnItem:             "uniq_str_eq",
	FailFnItem:                  "fail_",
	FailBoundsCheckFnItem:       "fail_bounds_check",
	ExchangeMallocFnItem:        "exchange_malloc",
	ClosureExchangeMallocFnItem: "closure_exchange_malloc",
	ExchangeFreeFnItem:          "exchange_free",
	MallocFnItem:                "malloc",
	FreeFnItem:                  "free",
	BorrowAsImmFnItem:           "borrow_as_imm",
	BorrowAsMutFnItem:           "borrow_as_mut",
	ReturnToMutFnItem:           "return_to_mut",
	CheckNotBorrowedFnItem:      "check_not_borrowed",
	StrDupUniqFnItem:            "strdup_uniq",
	RecordBorrowFnItem:          "record_borrow",
	UnrecordBorrowFnItem:        "unrecord_borrow",

	StartFnItem: "start",

	TyDescStructItem:   "ty_desc",
	TyVisitorTraitItem: "ty_visitor",
	OpaqueStructItem:   "opaque",

	EventLoopFactoryItem: "event_loop_factory",

	TypeIDItem: "type_id",
}

// itemRefs maps canonical name back to catalog index.
var itemRefs = func() map[string]LangItem {
	refs := make(map[string]LangItem, ItemCount)
	for kind, name := range langItemNames {
		refs[name] = LangItem(kind) //nolint:gosec // kind < ItemCount
	}
	return refs
}()

// ItemName returns the canonical name for a catalog index. Total: an
// out-of-range index yields a placeholder, never a panic.
func ItemName(index uint32) string {
	if index >= uint32(ItemCount) {
		return "???"
	}
	return langItemNames[index]
}

// Name returns the canonical name of the kind.
func (k LangItem) Name() string {
	return ItemName(uint32(k))
}

// LookupItem resolves a canonical name to its catalog index.
func LookupItem(name string) (LangItem, bool) {
	kind, ok := itemRefs[name]
	return kind, ok
}
