package bytehelper

// Editor produces edited copies of byte sequences. A nil slice stands for an
// absent sequence. Results are never nil.
type Editor interface {
	GetBytes(
		source []byte,
		startAt, length int,
	) []byte

	AppendBytes(
		source, bytesToAppend []byte,
	) []byte

	InsertBytes(
		source, bytesToInsert []byte,
		insertAt int,
	) []byte

	RemoveBytes(
		source []byte,
		removeAt, length int,
	) []byte
}
