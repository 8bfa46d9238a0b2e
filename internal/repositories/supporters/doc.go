// Package supporters persists the emergency and treatment contacts of an
// account. Supporters are insert-only; the first one inserted for an
// account is the one SOS alerts go to first.
package supporters
