package fixedarray

// cursor holds what both traversal orders share: a borrowed array and a
// position into it. The array must outlive the cursor.
type cursor[T any] struct {
	array *Array[T]
	pos   *Position
}

// Ptr returns a pointer to the element under the cursor. It panics with
// an *IndexError when the cursor is at or past the end.
func (c *cursor[T]) Ptr() *T {
	if c.array == nil || c.pos == nil {
		panic(ErrNoContainer)
	}
	p, err := resolve(c.array, c.pos)
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns the element under the cursor.
func (c *cursor[T]) Value() T {
	return *c.Ptr()
}

// Set stores v in the element under the cursor.
func (c *cursor[T]) Set(v T) {
	*c.Ptr() = v
}

// Position returns a copy of the cursor's position.
func (c *cursor[T]) Position() *Position {
	return c.pos.clone()
}

func (c *cursor[T]) clone() cursor[T] {
	return cursor[T]{array: c.array, pos: c.pos.clone()}
}

// FirstMajorCursor walks an Array with the last axis varying fastest:
// for extents (2, 3) it visits (0,0) (0,1) (0,2) (1,0) (1,1) (1,2).
type FirstMajorCursor[T any] struct {
	cursor[T]
}

// Next advances the cursor and returns it.
func (c *FirstMajorCursor[T]) Next() *FirstMajorCursor[T] {
	if c.pos != nil {
		c.pos.advanceFirstMajor()
	}
	return c
}

// PostNext advances the cursor and returns a copy of its prior state.
func (c *FirstMajorCursor[T]) PostNext() *FirstMajorCursor[T] {
	prev := c.Clone()
	c.Next()
	return prev
}

// Clone returns an independent cursor at the same position.
func (c *FirstMajorCursor[T]) Clone() *FirstMajorCursor[T] {
	return &FirstMajorCursor[T]{c.cursor.clone()}
}

// Equal reports whether both cursors are at the same position. The
// arrays they borrow are not compared. A nil cursor equals nothing.
func (c *FirstMajorCursor[T]) Equal(other *FirstMajorCursor[T]) bool {
	if c == nil || other == nil {
		return false
	}
	return c.pos.Equal(other.pos)
}

// LastMajorCursor walks an Array with the first axis varying fastest:
// for extents (2, 3) it visits (0,0) (1,0) (0,1) (1,1) (0,2) (1,2).
type LastMajorCursor[T any] struct {
	cursor[T]
}

// Next advances the cursor and returns it.
func (c *LastMajorCursor[T]) Next() *LastMajorCursor[T] {
	if c.pos != nil {
		c.pos.advanceLastMajor()
	}
	return c
}

// PostNext advances the cursor and returns a copy of its prior state.
func (c *LastMajorCursor[T]) PostNext() *LastMajorCursor[T] {
	prev := c.Clone()
	c.Next()
	return prev
}

// Clone returns an independent cursor at the same position.
func (c *LastMajorCursor[T]) Clone() *LastMajorCursor[T] {
	return &LastMajorCursor[T]{c.cursor.clone()}
}

// Equal reports whether both cursors are at the same position. The
// arrays they borrow are not compared. A nil cursor equals nothing.
func (c *LastMajorCursor[T]) Equal(other *LastMajorCursor[T]) bool {
	if c == nil || other == nil {
		return false
	}
	return c.pos.Equal(other.pos)
}

// FirstMajorBegin returns a first-dimension-major cursor at the first
// element.
func (a *Array[T]) FirstMajorBegin() *FirstMajorCursor[T] {
	return &FirstMajorCursor[T]{cursor[T]{array: a, pos: newPosition(a.extents)}}
}

// FirstMajorEnd returns the first-dimension-major cursor one step past
// the last element.
func (a *Array[T]) FirstMajorEnd() *FirstMajorCursor[T] {
	pos := newPosition(a.extents)
	if pos != nil {
		pos.setMax()
		pos.advanceFirstMajor()
	}
	return &FirstMajorCursor[T]{cursor[T]{array: a, pos: pos}}
}

// LastMajorBegin returns a last-dimension-major cursor at the first
// element.
func (a *Array[T]) LastMajorBegin() *LastMajorCursor[T] {
	return &LastMajorCursor[T]{cursor[T]{array: a, pos: newPosition(a.extents)}}
}

// LastMajorEnd returns the last-dimension-major cursor one step past the
// last element.
func (a *Array[T]) LastMajorEnd() *LastMajorCursor[T] {
	pos := newPosition(a.extents)
	if pos != nil {
		pos.setMax()
		pos.advanceLastMajor()
	}
	return &LastMajorCursor[T]{cursor[T]{array: a, pos: pos}}
}
