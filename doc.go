/*
 * doc.go, part of gocrys.
 *
 *
 * Copyright 2024 The gocrys authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

/*Package crys post-processes the electronic structure results of the CRYSTAL
periodic ab-initio code: band structures, densities of states and charge/spin
density maps. The numbers are read by some external parser and given to the
constructors here (NewBand, NewDos, NewChargeDensity). The objects keep
their data consistent when changing units, and are ready to be plotted
(see the crysplot sub-package).


	**Capabilities**

    Hartree/eV and Bohr/Angstrom conversions, for scalars and for arrays of
	any shape.

    Band gap, valence band maximum and conduction band minimum for closed and
	open shell systems, with the k-path positions where they occur.

    In-place, idempotent unit changes for all the objects. Values derived from
	the data (i.e. the band gap) are converted along with it.

    Difference charge/spin density maps.


Energies are always referred to a Fermi level of 0. Band structures and DOS
can be in eV and Angstrom (UnitEV) or Hartree and Bohr (UnitAU). Charge densities
are in e/A^3 (UnitAngstrom) or e/Bohr^3 (UnitAU).

None of the objects is safe for concurrent use: SetUnit changes several fields
one after the other.*/
package crys
