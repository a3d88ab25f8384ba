/*
Package enummap implements total, array-backed maps over enumerable key
types.

A Map[K, V] holds exactly one V per possible value of K, in a contiguous
array ordered by a dense index derived from K's shape. Lookups compile down
to array indexing; there is no hashing, no key storage, and no failure path
on Get or Set, because every value of K has a slot by construction.

We support these key shapes:

1. bool (2 keys) and byte-sized unsigned integers (256 keys), treated as
degenerate enums.

2. Unit enums: ordinary Go constant enums declared with DefineEnum. The
order of the DefineEnum arguments assigns indices; the numeric constant
values are irrelevant, so sparse or reordered iota blocks work fine.

3. Structs of enumerable fields, enumerated as the cross product of the
fields. The index is a mixed-radix number with the first field varying
fastest.

4. Pointers *T, enumerated as nil plus every value of T.

5. Unions: interface types with a closed set of struct variants, declared
with DefineUnion. Variants occupy consecutive index ranges in declaration
order.

Shapes nest: a union case may carry struct fields, a struct field may be a
pointer to another enum, and so on. The codec for a type is derived once,
on first use, and cached.

# Wire format

Maps marshal to and from MessagePack and JSON as ordinary mappings keyed by
the textual form of each key ("Red", "true", "Square(false)"). Decoding
requires every key to be present exactly once; duplicates keep the last
value, omissions fail with ErrKeyNotSpecified. The internal index never
appears on the wire.

# Sharing

A Map value is a header over shared backing storage, like a slice. It is
not synchronized; confine a map to one goroutine or guard it externally
when any writer is present.
*/
package enummap
