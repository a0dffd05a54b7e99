package conv

// AppendPad appends n zero-padded to exactly width digits (n is truncated
// to width digits if larger). Display fields on a character LCD are fixed
// width, so truncation beats overflow.
func AppendPad(dst []byte, n uint64, width int) []byte {
	if width <= 0 {
		return dst
	}
	start := len(dst)
	for i := 0; i < width; i++ {
		dst = append(dst, '0')
	}
	for i := width - 1; i >= 0; i-- {
		dst[start+i] = byte('0' + n%10)
		n /= 10
	}
	return dst
}

// AppendDeci appends a fixed-point value given in tenths as "<int>.<frac>".
// Negative values get a leading '-'.
func AppendDeci(dst []byte, tenths int32) []byte {
	if tenths < 0 {
		dst = append(dst, '-')
		tenths = -tenths
	}
	var buf [12]byte
	dst = append(dst, Itoa(buf[:], int64(tenths/10))...)
	dst = append(dst, '.')
	dst = append(dst, byte('0'+tenths%10))
	return dst
}

// AppendUint appends base-10 digits of n.
func AppendUint(dst []byte, n uint64) []byte {
	var buf [20]byte
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return append(dst, buf[i:]...)
}
