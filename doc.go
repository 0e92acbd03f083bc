// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/srb2modname

/*
Package modname classifies SRB2, SRB2Kart and Ring Racers mod containers
and derives a standardized release file name from their content.

A name looks like "SRL_My_Mod_v1.0.pk3": a prefix of category letters,
the mod name and the version. Letters are detected from the container:

  - S, R, M, F, B, T from TypeOfLevel lines of SOC and MAINCFG text;
  - C from Character SOC blocks or P_SKIN/S_SKIN entries;
  - F on Ring Racers from Follower SOC blocks;
  - L from Lua scripts;
  - K and D mark SRB2Kart and Ring Racers mods.

Each letter is claimed once, first match wins. Letters are ordered by a
per-target rank table; letters without a rank keep detection order.

# WAD

WAD containers (IWAD, PWAD and the SDLL tag of Demo 4) are read from memory:

	data, err := os.ReadFile("mymod.wad")
	if err != nil {
	    return err
	}
	res, err := modname.ClassifyWAD(data, modname.TargetSRB2, "My_Mod", "1.0")
	if err != nil {
	    return err
	}
	fmt.Println(res.FileName)
	for _, reason := range res.Reasons {
	    fmt.Println(" -", reason)
	}

ZWAD fails with ErrUnsupportedVariant, any other tag with ErrInvalidContainer.

# PK3

PK3 archives are classified from entries in stored archive order:

	entries, err := modname.ReadArchiveEntriesBytes(data)
	if err != nil {
	    return err
	}
	res, err := modname.ClassifyPK3WithOptions(entries, modname.TargetDRRR, "My_Mod", "2", modname.Options{
	    Exclude: modname.ExcludeRules("soc/unused/**"),
	    OnEntry: func(e modname.EntryEvent) {
	        log.Printf("%s: %s", e.Role, e.Path)
	    },
	})

Or let the package pick the reader:

	res, err := modname.ClassifyFile("mymod.pk3", modname.TargetSRB2Kart,
	    modname.NormalizeName("My Mod"), modname.NormalizeVersion("1.0"))
*/
package modname
