/*
Package bptree implements the B+ tree core behind the ordset container.

The tree stores a set of keys under a client-supplied strict weak ordering.
All keys live in leaves; internal nodes hold separator keys only and route
lookups to the child whose key range contains the key. Leaves are chained
into a doubly-linked list in ascending key order, which is what the forward
cursor walks.

Structure is governed by the fanout N (Config.Fanout): every non-root node
holds between N and 2N keys. An insert may transiently overfill a node to
2N+1 keys, which the parent immediately resolves by splitting the child in
two. An erase may transiently drain a node to N-1 keys, which the parent
resolves by borrowing a key from a sibling or by fusing two siblings into
one. Both repairs can propagate: a split can overfill the parent, a fusion
can drain it, and the tree grows or shrinks by one level when the repair
reaches the root.

The package deliberately exposes a low-level surface (Tree, Cursor, Check);
package ordset wraps it into the public container API.
*/
package bptree
