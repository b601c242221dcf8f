/*
Package rlp implements the Recursive Length Prefix encoding used for
discovery datagram payloads and peer records.

Every value is either a byte string or a list of values. Encoding rules:

	- A single byte in the range 0x00-0x7f is its own encoding.
	- A byte string of 0-55 bytes is prefixed with 0x80 + len.
	- A longer byte string is prefixed with 0xb7 + k, followed by the k-byte
	  minimal big-endian encoding of its length.
	- A list whose concatenated item encodings (the payload) total 0-55
	  bytes is prefixed with 0xc0 + payload size.
	- A longer list is prefixed with 0xf7 + k, followed by the k-byte
	  minimal big-endian encoding of the payload size.

Integers ("scalars") are encoded as byte strings holding their minimal
big-endian representation; zero is the empty string.

Encoding is cursor-style. Callers compute the encoded size up front,
allocate a bytesval.Mutable and write into it:

	payload := rlp.ElementSize(a) + rlp.ElementSize(b)
	dest := bytesval.NewMutable(rlp.ListSize(payload))
	off, err := rlp.WriteListHeader(payload, dest, 0)
	off, err = rlp.WriteElement(a, dest, off)
	off, err = rlp.WriteElement(b, dest, off)

Decoding goes through an Input cursor:

	in := rlp.NewInput(bytesval.Wrap(data))
	n, err := in.EnterList()
	for i := 0; i < n; i++ {
		item, err := in.ReadBytes()
	}
	err = in.LeaveList()

An Input rejects non-canonical encodings (redundant long forms, leading
zero length bytes, single bytes wrapped in a short prefix) unless it is
created with the Lenient option. Inputs read from the network must never
be lenient.
*/
package rlp
