/*Package mol2 reads multi-molecule MOL2 files.

A Source gives the lines of a file, decompressing it on the fly if needed. A Segmenter
takes those lines and splits them in Blocks, one per molecule, using two textual markers:
a record starts at a line containing "@<TRIPOS>MOLECULE" and ends at a line containing
"ROOT" (the root keyword of the SUBSTRUCTURE section). The markers are simple substring
tests, so a marker appearing in a molecule name will confuse the segmenter.

Some irregularities are tolerated and recorded as Anomalies: a record without end
marker at the end of the file is dropped, a start marker inside a record discards the
lines read so far, and an end marker outside a record produces, by default, a one-line block.

ParseBlock turns the text of a block into a chem.Molecule.
*/
package mol2
