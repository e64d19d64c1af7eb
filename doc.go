/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package chem is the main package of mol2props. It provides the atom, bond and molecule
structures that MOL2 records are parsed into, together with the property cache that the
sanitization toolkit fills and checks.


	**mol2props Capabilities**


    Splits multi-molecule MOL2 files (plain, gzip, zstd or s2 compressed) into
	one text block per molecule, following the record markers.

    Parses each block into a Molecule: atoms, SYBYL types, partial charges,
	bonds (including aromatic and amide bonds) and coordinates.

    Recomputes the property cache of a molecule (explicit valence, implicit hydrogens)
	in strict or tolerant mode.

    Sanitizes molecules: valence checks, ring perception (using the gonum graph
	library), radicals, conjugation, hybridization and overlapping atoms.
	Kekulization and aromaticity perception are not performed.

    Drives the validation of a whole file, either stopping at the first failure
	or isolating failures and reporting all of them at the end, as JSON.

Coordinates are kept in v3.Matrix objects, based on gonum's Dense type. Each row of
a v3.Matrix represents one point in space.*/
package chem
