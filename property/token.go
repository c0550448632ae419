// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

// Token is a capability presented by a caller to authorize gated
// mutations of a [Property]. A property with an owner token only accepts
// unrestricted writes and meta changes from callers presenting a token
// that [Token.Owns] it.
//
// Tokens are a trust-based mechanism: anyone holding a token can use it,
// so a type should keep its token unexported and only pass it to code
// acting on its behalf.
type Token struct {
	name   string
	parent *Token
}

// internal is the token used by the property package itself;
// it is recognized as an owner of every property.
var internal = &Token{name: "property"}

// NewToken returns a new root token with the given name,
// which is only used for debugging output.
func NewToken(name string) *Token {
	return &Token{name: name}
}

// Derive returns a new token that owns everything this token owns.
// It is the equivalent of a subtype of the owner type.
func (t *Token) Derive(name string) *Token {
	return &Token{name: name, parent: t}
}

// Parent returns the token this token was derived from, or nil.
func (t *Token) Parent() *Token {
	if t == nil {
		return nil
	}
	return t.parent
}

// Owns returns whether this token is recognized as the given owner:
// it is the owner itself, it was derived from the owner, or it is the
// property package's own token. A nil token owns nothing.
func (t *Token) Owns(owner *Token) bool {
	if t == nil {
		return false
	}
	if t == internal {
		return true
	}
	for cur := t; cur != nil; cur = cur.parent {
		if cur == owner {
			return true
		}
	}
	return false
}

// String returns the path of names from the root token to this one.
func (t *Token) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.parent == nil {
		return t.name
	}
	return t.parent.String() + "/" + t.name
}
