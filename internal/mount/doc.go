// Package mount models mounted filesystems and reads the mount table.
//
// Records are read once per run through a Reader and held immutable for
// the rest of the pipeline. Capacity and inode statistics are optional:
// a mount that cannot be statted (an unreachable NFS export, say) keeps
// its record with nil Stats so it still renders, with every statistic
// resolving to a missing value.
package mount
