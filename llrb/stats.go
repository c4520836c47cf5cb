package llrb

import humanize "github.com/dustin/go-humanize"

import "github.com/bnclabs/gotree/lib"

// llrbstats book-keeping for a tree instance. Updated in-line by the
// mutation path, reads are meaningful only between mutations.
type llrbstats struct {
	n_count   int64 // number of items in the tree
	n_inserts int64
	n_updates int64
	n_deletes int64
	n_nodes   int64 // number of nodes created
	n_frees   int64 // number of nodes destroyed

	h_upsertdepth *lib.HistogramInt64
}

func (t *tree[I, K]) upsertcounts(updated bool) {
	if updated {
		t.n_updates++
		return
	}
	t.n_count++
	t.n_inserts++
}

func (t *tree[I, K]) delcounts(deleted *node[I]) {
	if deleted != nil {
		t.n_count--
		t.n_deletes++
	}
}

// Stats return book-keeping counters and histograms as a map.
func (t *tree[I, K]) Stats() map[string]interface{} {
	stats := map[string]interface{}{
		"n_count":   t.n_count,
		"n_inserts": t.n_inserts,
		"n_updates": t.n_updates,
		"n_deletes": t.n_deletes,
		"n_nodes":   t.n_nodes,
		"n_frees":   t.n_frees,
	}
	stats["h_upsertdepth"] = t.h_upsertdepth.Fullstats()
	return stats
}

func (t *tree[I, K]) logstatistics() {
	infof(
		"%v count %v {%v inserts, %v updates, %v deletes}\n",
		t.logprefix,
		humanize.Comma(t.n_count), humanize.Comma(t.n_inserts),
		humanize.Comma(t.n_updates), humanize.Comma(t.n_deletes))
	infof(
		"%v nodes {%v created, %v freed}\n",
		t.logprefix, humanize.Comma(t.n_nodes), humanize.Comma(t.n_frees))
	infof(
		"%v upsertdepth {mean: %v, max: %v}\n",
		t.logprefix, t.h_upsertdepth.Mean(), t.h_upsertdepth.Max())
}
