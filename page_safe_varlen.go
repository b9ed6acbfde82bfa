package columnar

// safeVarLenStore backs a variable-length page with a managed array of
// per-row byte slices.
type safeVarLenStore struct {
	noStore
	rows [][]byte
}

func newSafeVarLenStore(pageSize int) *safeVarLenStore {
	return &safeVarLenStore{
		noStore: noStore{kind: "safe variable length"},
		rows:    make([][]byte, pageSize),
	}
}

func (s *safeVarLenStore) putBytes(rowID int, v []byte) {
	row := make([]byte, len(v))
	copy(row, v)
	s.rows[rowID] = row
}

func (s *safeVarLenStore) getBytes(rowID int) []byte {
	if s.rows[rowID] == nil {
		return []byte{}
	}
	return s.rows[rowID]
}

func (s *safeVarLenStore) setByteArrayPage(v [][]byte) { s.rows = v }

func (s *safeVarLenStore) byteArrayPage() [][]byte { return s.rows }

func (s *safeVarLenStore) lvFlattenedBytePage() []byte {
	size := 0
	for _, row := range s.rows {
		size += 4 + len(row)
	}
	flat := make([]byte, 0, size)
	for _, row := range s.rows {
		flat = appendLV(flat, row)
	}
	return flat
}

func (s *safeVarLenStore) directFlattenedBytePage() []byte {
	size := 0
	for _, row := range s.rows {
		size += len(row)
	}
	flat := make([]byte, 0, size)
	for _, row := range s.rows {
		flat = append(flat, row...)
	}
	return flat
}

func (s *safeVarLenStore) freeMemory() {}
