// Package drift detects schema drift by fingerprinting snapshots with a
// merkle tree. Each table hashes to a leaf built from its columns,
// indexes, and foreign keys; the tree root fingerprints the whole
// schema, so two snapshots can be compared in one hash check and only
// unequal fingerprints need a drill-down.
package drift

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/cbergoon/merkletree"

	"github.com/zqlz/ddlkit/internal/schema"
)

// Fingerprint is the merkle root of one snapshot plus per-table hashes
// for drill-down when roots differ.
type Fingerprint struct {
	Root   string
	Tables map[string]*TableHash
}

// TableHash is the hash of a single table and of each of its parts.
type TableHash struct {
	Name        string
	Hash        string
	Columns     map[string]string
	Indexes     map[string]string
	ForeignKeys map[string]string
}

// tableContent implements merkletree.Content for table leaves.
type tableContent struct {
	name string
	hash string
}

func (t tableContent) CalculateHash() ([]byte, error) {
	h := sha256.Sum256([]byte(t.hash))
	return h[:], nil
}

func (t tableContent) Equals(other merkletree.Content) (bool, error) {
	o, ok := other.(tableContent)
	if !ok {
		return false, nil
	}
	return t.hash == o.hash, nil
}

// ComputeFingerprint hashes every table in the snapshot and builds the
// merkle tree over the sorted table leaves. An empty snapshot gets a
// stable sentinel root.
func ComputeFingerprint(snap *schema.Snapshot) (*Fingerprint, error) {
	result := &Fingerprint{Tables: make(map[string]*TableHash)}
	if snap == nil || len(snap.Tables) == 0 {
		result.Root = emptyHash()
		return result, nil
	}

	names := make([]string, 0, len(snap.Tables))
	byName := make(map[string]*schema.TableInfo, len(snap.Tables))
	for i := range snap.Tables {
		t := &snap.Tables[i]
		names = append(names, t.QualifiedName())
		byName[t.QualifiedName()] = t
	}
	sort.Strings(names)

	contents := make([]merkletree.Content, 0, len(names))
	for _, name := range names {
		th := computeTableHash(byName[name])
		result.Tables[name] = th
		contents = append(contents, tableContent{name: name, hash: th.Hash})
	}

	tree, err := merkletree.NewTree(contents)
	if err != nil {
		return nil, fmt.Errorf("building merkle tree: %w", err)
	}
	result.Root = hex.EncodeToString(tree.MerkleRoot())
	return result, nil
}

func computeTableHash(t *schema.TableInfo) *TableHash {
	result := &TableHash{
		Name:        t.QualifiedName(),
		Columns:     make(map[string]string, len(t.Columns)),
		Indexes:     make(map[string]string, len(t.Indexes)),
		ForeignKeys: make(map[string]string, len(t.ForeignKeys)),
	}

	for i := range t.Columns {
		col := &t.Columns[i]
		result.Columns[col.Name] = columnHash(col)
	}
	columnHashes := joinHashes(result.Columns)

	for i := range t.Indexes {
		idx := &t.Indexes[i]
		result.Indexes[idx.Name] = indexHash(idx)
	}
	indexHashes := joinHashes(result.Indexes)

	for i := range t.ForeignKeys {
		fk := &t.ForeignKeys[i]
		result.ForeignKeys[fk.Name] = foreignKeyHash(fk)
	}
	fkHashes := joinHashes(result.ForeignKeys)

	pk := ""
	if t.PrimaryKey != nil {
		pk = strings.Join(t.PrimaryKey.Columns, ",")
	}

	result.Hash = hashString(fmt.Sprintf("table:%s|pk:[%s]|columns:[%s]|indexes:[%s]|fks:[%s]",
		result.Name, pk, columnHashes, indexHashes, fkHashes))
	return result
}

func columnHash(col *schema.ColumnInfo) string {
	data := fmt.Sprintf("name:%s|type:%s|nullable:%v|unique:%v|pk:%v",
		col.Name,
		normalizedType(col),
		col.Nullable,
		col.Unique,
		col.PrimaryKey,
	)
	if col.Default != nil {
		data += "|default:" + *col.Default
	}
	if col.AutoIncrement {
		data += "|autoincrement:true"
	}
	return hashString(data)
}

func indexHash(idx *schema.IndexInfo) string {
	return hashString(fmt.Sprintf("name:%s|columns:[%s]|unique:%v|primary:%v|type:%s",
		idx.Name,
		strings.Join(idx.Columns, ","),
		idx.Unique,
		idx.Primary,
		idx.IndexType,
	))
}

func foreignKeyHash(fk *schema.ForeignKeyInfo) string {
	return hashString(fmt.Sprintf("name:%s|columns:[%s]|ref_table:%s|ref_columns:[%s]|on_delete:%s|on_update:%s",
		fk.Name,
		strings.Join(fk.Columns, ","),
		fk.ReferencedTable,
		strings.Join(fk.ReferencedColumns, ","),
		fk.OnDelete,
		fk.OnUpdate,
	))
}

// normalizedType folds the type and its size arguments into one
// canonical spelling so VARCHAR + MaxLength 255 always hashes the same.
func normalizedType(col *schema.ColumnInfo) string {
	switch {
	case col.MaxLength != nil:
		return fmt.Sprintf("%s(%d)", col.DataType, *col.MaxLength)
	case col.Precision != nil && col.Scale != nil:
		return fmt.Sprintf("%s(%d,%d)", col.DataType, *col.Precision, *col.Scale)
	case col.Precision != nil:
		return fmt.Sprintf("%s(%d)", col.DataType, *col.Precision)
	}
	return col.DataType
}

// joinHashes renders a name->hash map as "name:hash,..." in sorted
// order so the parent hash is deterministic.
func joinHashes(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ":" + m[k]
	}
	return strings.Join(parts, ",")
}

func hashString(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

func emptyHash() string {
	return hashString("empty_schema")
}
