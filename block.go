package indent

// Block runs fn one default-width level deeper, popping the level
// when fn returns. The push/pop pair is balanced even when fn fails.
func (w *Writer) Block(fn func() error) error {
	return w.BlockN(w.width, fn)
}

// BlockN is Block with an explicit width.
func (w *Writer) BlockN(width int, fn func() error) error {
	w.PushN(width)
	defer w.Pop()
	return fn()
}
