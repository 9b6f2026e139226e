// Package visibility computes each module's Effective Visibility Set: the
// modules whose public interface it may include.
//
// The rule is "public propagates, private stops". Resolution is two explicit
// phases rather than one transitive closure:
//  1. every direct dependency of the module, public or private;
//  2. from each of those, only public edges, followed transitively.
//
// A private edge of any transitive dependency is never followed, which keeps
// diamond shapes correct: with A -> B and A -> C public and B -> D and C -> D
// private, D is not visible to A.
package visibility
