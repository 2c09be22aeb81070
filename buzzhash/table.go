package buzzhash

// seed is the initial accumulator value.
const seed uint64 = 0xd2e53d6f22366a6f

// table maps the low byte of a UTF-16 code unit to its rolling value.
var table = [256]uint64{
	0xb9c0dcd9316ac2c4, 0xdb188d4adcb22851, 0x593e765d7abba0a9, 0x9494531821216993,
	0x249651b073844ece, 0x52b0124be873b0a9, 0x7690d27cf872e3f7, 0x962fb81f27f9ed8a,
	0x88203111376a577f, 0x507fb304fb20cadf, 0xceafbbf5549d265a, 0x50c071c294e37744,
	0x18d00cad85546ff4, 0x63a65aa4d196c235, 0x563e768b49139c87, 0x6f2db45b4500a273,
	0x1dc513ba8772f4b8, 0x75e5b0ec32ef5702, 0x80ba437942d466e8, 0x6bfc0a770205d88f,
	0x098396fc9bc79ead, 0x680e9f33c2534515, 0x3e01368cce9ec09f, 0xcbdc70697b0d6e5d,
	0xdb3fe124a4155625, 0x4d3b97ea4631729c, 0x133007e74d0e7769, 0xe9c1340297a2b95c,
	0x29f485dc466e5d18, 0x3f779ca55617021c, 0xe742bf4992680dc5, 0xb35f3dc407515033,
	0xc81d2a4cceea316b, 0xb12df8b9b292f1bc, 0x4b3b53da9ff4185c, 0x0fb0b8f152a3577e,
	0x3560ce6f4eabfc74, 0xc9000f0a7f24426e, 0x4b0ba9f5388ae5dc, 0xd26a747830ae4f92,
	0x4a79ac7e833e5db6, 0xb762e915df24fab7, 0xac4fa32f4e5250ba, 0x8deecd03594e8fa8,
	0x8ce2b670390d367d, 0xfd986956857fcdbe, 0x361850d566c193d8, 0x5299b13d71285aa0,
	0xe6e9b436fdf8663a, 0xddb4bd10209544c2, 0x755654f607ad4c1d, 0x252339d57d74413e,
	0x9e136acaeb988b21, 0x6f59227362839b26, 0xd3e2f5b8d4f1001a, 0x7a5062c1134eb9bf,
	0xf7f8aa65e6977ee4, 0x74030648cc38ef05, 0xb2e5163d7b9b07e8, 0x86b0eadad1c8d8b9,
	0x77c339f33ff4d071, 0x6489a70b431c5735, 0x19ff33fd531d36ae, 0x25071ba85cf9e6ab,
	0x19a6e1b23bc41f03, 0x060602f5d796e69a, 0xde543c67295476df, 0xd722a4380854446e,
	0x2242a5280addce98, 0x86f78be969b0bb6b, 0x3afc1b2c919b9a39, 0x8d3454fed3959918,
	0xf6e46e7af3490f84, 0x9b673aca9988e75a, 0xdbcc6878d298439e, 0x871e7d02268ce320,
	0x3cb2b4c54dde5850, 0x0cbd516c6d70001e, 0xda6eedb823c9f1a3, 0xc510880968a3561a,
	0x4b9919bb3f32f517, 0x9f5ac0689044f191, 0x597cc3945e285829, 0x372157f69eb120dc,
	0x6309870b44048c83, 0x87a6d02f027c3652, 0x5517727111b80fbf, 0x4035d188bc33be1a,
	0x5cc3eb603b7f5458, 0x113ab7de3cb66eec, 0xf7904abc59d44cff, 0x1cc83758bf8973d4,
	0xfa90007f5e671a91, 0x85b82635067bbfad, 0x77b83f85d66a23d9, 0xbaf6b14512a757f0,
	0x1b2007673342afa0, 0xfaa6fbd75990fe60, 0x3df0a534a0792f75, 0x61b0da6cf4e36c84,
	0x5e24995a71ca0132, 0x8f970e76d124ad67, 0x8e761d41fa6140d9, 0x7bbc45762ee8b1de,
	0x193e08094d1c1e30, 0xdfbe6b130e3784c8, 0x1068cf2d57af6272, 0xb0b117df1637c8da,
	0xbf71c6dd836a4349, 0x67603908a52b90ee, 0x9c9703a1cef86876, 0x2501f0da44754dc5,
	0xe053e8a59833913c, 0xe9a930adbe24ff9e, 0x99a5331aa1c5c1a0, 0x669d63d447bcd710,
	0xb4795b5c182dbefe, 0x17b7ea9467b7f82f, 0xf8c6a3e0d7345064, 0xdd5bd884f07a8b05,
	0xd66697b991fd926f, 0xc7d2eb5d180e4347, 0xf9c1814f784c2064, 0xb33f497b6d7cc4ea,
	0xe02526039a709b2b, 0xf5e4f40e0247f2c7, 0x4eb78368efd55f48, 0xa00f90412eb15b34,
	0xde607f1b0aa370aa, 0xbef17ac50c137316, 0x15109d5a01ee0c4f, 0xfbe12be507086fbb,
	0x6a67a44471c54a9f, 0xac375d18b4c6918e, 0x20b92f948e632804, 0x3f75f4d7213f1f50,
	0xa3674ec7768c7404, 0xc7f43ee652f9050b, 0x66f17e5a01ac84cb, 0xb8a1b810b8c68ff7,
	0x0f7d874e558a40d7, 0x825334ca1b5f35a4, 0xd9a335183eae9a92, 0xcf3ed561d38dd4f6,
	0xf768cdacf079a7e3, 0x28734c58b3ae62b8, 0x96b5cb08e724659a, 0x137ec5c5368e79f7,
	0xa2e3f473206726bc, 0x3123c2ca65891e99, 0x79cabe5c17ac994e, 0xd28c9881fd52a309,
	0x8478fa36d069925b, 0xed6718a06a217581, 0x9b37287690e0c58f, 0x966eebedbc24de01,
	0xbc9dab6700c65d0a, 0x34e7044846720108, 0xf2335e4968958f91, 0x4476f512eb8a9cc3,
	0x6030b951c3fde16f, 0x573002f22f768360, 0x7f03ef30545e20b9, 0x054ef99e61b774f4,
	0x2e8e30cb6b66c2a6, 0x853811595addc7c4, 0x45bf28257d59e435, 0x89a4f3c4b6dc8657,
	0x6c220a05f62e8ad9, 0x6dbe692e6ce2e222, 0x3f35e7e04fb8f096, 0x08af66cadfe77f42,
	0xba61d1bb1e73e959, 0xcd217d1fe6a05328, 0x8451b2bab3451a4c, 0x93d37fcdf1a691f2,
	0x877416d1dfa15c60, 0x9e07421b5d2a9004, 0x86122991a51825a0, 0xfd2733860fe1c8b7,
	0x743b2e79b1773d77, 0x37f9d7f2eda32aa0, 0x756bb855e7a69511, 0x001b8b9bf003d635,
	0xa2cf0e2e45234e9e, 0xd33f59680aaec0f9, 0xe942016853aa2155, 0xf69dba11ca5cdfd7,
	0x36824f915ec10f5e, 0x85b272de7c13ae94, 0x48c997d7b2c98454, 0x2c154968d6d4ed92,
	0xba1daaa74b559ae4, 0x3a7163f5e954b14d, 0x6cd009d742bbc76e, 0xc74b788b31ac8115,
	0x693aafef788f8a4a, 0xa51543f5f0a551a3, 0x93da523cba6f3af8, 0x426fda15d4e886c9,
	0x75df189c24ed3e26, 0x34024ab023306ceb, 0xbcfcc294a598bd51, 0xb211beb7b512daf7,
	0xbb755e4f4d8e92cb, 0x585cdb1491375cf5, 0x311383add5efa28d, 0x99b35e0391a5e685,
	0xc7e29ae1e3776f44, 0x7086e31d6c0a82f3, 0x8952347fe4bf1717, 0xb92c30802fc0f7d8,
	0xa7b6faeb0f9c9d00, 0x751793ab45f00b3a, 0xb1e6ec888de0e9aa, 0x3805db71f8866823,
	0x4f0c7b4800e1d955, 0xa3012fe2068a49c8, 0x11f677ef52461e12, 0x40f430f1a4a55e34,
	0xf947eda7605a6370, 0x1d6b18c22d6ca439, 0x07bc8013eefd6338, 0xdccbc97bf854ebf1,
	0xc687fb43e4cfc6de, 0x96dc023aba53e3da, 0xf209eda40c19e92b, 0x8b03f914aa86fad2,
	0xe2f85ec1c3250e23, 0x63096cb0bde8ab1f, 0xdeff1b6ffeb3dd4b, 0x46adfcd77d317ea5,
	0x9543a6932cc57164, 0x274e36aa42ae3f6d, 0x3eea41b0375f5f9c, 0x0994d4d1575e1a08,
	0x969a7b241302778f, 0x4bb1ece69b427b26, 0xef14df0f8d8f263f, 0xec8cc1c124685f3b,
	0x251af220a5e5f98d, 0x89b6ce0557d70014, 0xcd2672958abba248, 0x15072e2ae470f960,
	0x40d42c9fce087ba0, 0xd1f73cf657fa93d0, 0x1ce95947c63cc150, 0x0cc83372d515c07c,
	0xec1c92766419d640, 0x75b1724a2f597db4, 0xd169bcdac3ea8aa4, 0x33072958810b4c50,
	0x4d0dfa0af1febb70, 0x54765927b87250be, 0xa3532cb252d82605, 0xf9a2f334c99fe092,
}

// mix holds the perturbation applied to a code unit that repeats at a multiple
// of window positions earlier.
var mix = [256]uint64{
	0x8bc279d1c6d526c6, 0xd76804a701a4a98e, 0x9ecf68e76cf294c5, 0xcf4d9e839d7a5923,
	0x824167a1a9c15a09, 0x0b19e53d9cf00b0d, 0xb6a06d498c311463, 0x5d9eb99eb711adbc,
	0x05700cc98b25e697, 0x3abe5a702621e661, 0xfa543d01820d8113, 0x6b824f8a8c039a44,
	0xc636c7469e630250, 0xc9aac70f2f5679ba, 0x8bab4bf9234876df, 0xf2a5ea17909c53d0,
	0xe1e5b3af455ef175, 0x6fe388d154032335, 0x4a52e50c3726d3ae, 0x2e12c12b148005d6,
	0xceccebfa187b12af, 0x3e2120808b7c98df, 0x21593ad785524b69, 0x87dc1a5ad6ee4074,
	0x33ff776065538137, 0xe6738fb0617d4a2c, 0x9cad2161e1228c50, 0xe5714ac9ada5bfd1,
	0x8595050b0beb5e20, 0x1fd3db63362c1d51, 0x04f4d731c9d501b7, 0x02a2310e7438b023,
	0xe4bb1d12ecbe18ec, 0xdd9831300ee5bd4d, 0x935b19af334d9d3b, 0x99ed8c8fa7e3ef10,
	0x3529449f4e17b9c3, 0xbd790efeee5de853, 0x42928d0d37cd617c, 0xaf489f85d0a70123,
	0xd31a61da93c97046, 0xa70a54e114eec37a, 0xce8f5ee260ad27c6, 0x9edd6036b98e10a1,
	0xe08e6953b53057ac, 0x7e54bc383cba796c, 0x8f8b624e84ca05fa, 0xed51b347822d0522,
	0x6b3dd452aa2e7856, 0x081d36a16fad180c, 0x6bc5bd5180c88a7e, 0x1c573bafc57cb14e,
	0xfd5e0dfb7e273fd9, 0xda464a044ecec090, 0xfc7fe54af0a6b7fc, 0x83a8105c476f52bf,
	0x88f97ca6c454520e, 0xc2fd42524a67d73c, 0x5758a2887c179e5b, 0x1cef64b41e11153a,
	0xdff7fb7a04387a77, 0xa45e431e2648107f, 0x14f434dc4facece8, 0x341528decb2444f3,
	0xad372266a0f81cba, 0xa9d3b777485ceea3, 0x64c858040f4cd86c, 0x5b6465f51d49b955,
	0x80c3cae79210c729, 0x917a491d41149721, 0x43b01105fa7040cb, 0xc21b0db317962bfa,
	0x48f62b384a7bb666, 0xc4f70829e9134e82, 0x1ad94bd1b98295fb, 0x5d4e7edc83278786,
	0x0eab374bbe71b38a, 0xb64bba24bbb7e31e, 0x00fbd6656f7372d2, 0x8f8b8eee75595f1d,
	0x6246962c1d9b74e4, 0xdd416fabb6a363d0, 0x23d4fb05dac80122, 0xe11bb70615d6c83a,
	0x61e87ae2be2d2090, 0x1eef33dc7ef73001, 0xba98c28fba58b3b1, 0x41f4857ed0cb5c44,
	0xdd69988c8008b97f, 0x0e658eb4c047f25e, 0xa5cdf7ed4d3b4763, 0x58f2becb758a4daa,
	0x1392d011a4c80396, 0x559e67f30b75b5c4, 0x935ac32d3849f6c6, 0x4dc187d68c65a803,
	0xada4ed71945819d3, 0x7738541a71f27413, 0x79f6f0fdf7d3d120, 0x4542dcad016d6985,
	0x853606f02e93b76f, 0x65afd877a190cd14, 0x3ae4e11d93ce2bfc, 0xdf219d96f4d365db,
	0xd27ac71cd1f096ca, 0xcca2d8aa64e59e0e, 0xc08be10746ba9306, 0x4c8d42ab63961e5c,
	0x3e3efaa21b78ec94, 0x70a0d138e541cbe6, 0x522348b26a3708a4, 0x02f813757b1613aa,
	0xef55495bcbfc1a5a, 0x3ae8e24ab5222061, 0x4f62f8284d8c6ec5, 0x9ee59dd8212b79c0,
	0x7ac3acb0cb9db846, 0x1712af66afdc4c6f, 0x1f14aeda38668cc0, 0x15b65d4930c6fc88,
	0xd38a7ea5d7163315, 0x6b9b41d86d5eff1e, 0x6f899aa12be92dbe, 0xbb27c26f560ec50f,
	0x999961f38151e46a, 0x99d9bbbb9d185d2c, 0xfa259d3b93bb990a, 0x087b164ade5a0667,
	0x3c0c0cbe93ab8d7c, 0x6aeed0b8005d1ca5, 0xc44f99c829d9028e, 0x54be3f691277d646,
	0x8507464ccc08b246, 0x89a12474d23d867d, 0x47764c50fdcae6f1, 0x28d8b9560e6076d4,
	0x5e0e18b2987ed324, 0x21ac55b57535352f, 0xe520f3a8b7d5e5f1, 0x6bad07d5331425d4,
	0x076b8b9ba3e7fbb1, 0xb15fb4866d0e7e23, 0x44efbe7edc09187e, 0x3cbb5fca36d327c4,
	0x88d7ee6290e16bcd, 0x1c15864ce2d406f8, 0x92edcbd360b265ac, 0x77730b37d144f3c2,
	0x29cc3425be28a6a0, 0xc697e0e4a9406fcf, 0x40c58ea62a8a9df1, 0xf47178e342541bca,
	0x183934c974089bf7, 0x6f2e928f39990ea1, 0x9e3f41133247400d, 0xf9c4794ee290827b,
	0x05b2d983f5bb3fcd, 0x388b0d10db2a70dc, 0x94cafe96bce7031b, 0x99bb5c6350ed050c,
	0xd87636e98a0bd5c4, 0x8f98898ce3e105e4, 0x3dd870de3bd951b1, 0xa4ad26ed02af68f5,
	0x3cd06615cacac2db, 0x306ae63bdc7224dc, 0xc56a235afcfa00d3, 0xa35883c507214e57,
	0xb40a81b134032f18, 0xec647effa550e6f2, 0xff271d506f30ea96, 0x32668746513aa913,
	0x726503b1caeb9ee6, 0x9e7d759337e8c8ec, 0x8f377a84c37b4e6f, 0x26caa0a99405a142,
	0xbfb4aba5b4a041de, 0x1a8ae702f1a1a70a, 0x37630a1a0e20e076, 0x7bb1c52c3ca0ad44,
	0x902e500f4d4cc049, 0xfea2b9fdb1e20a43, 0x91d795d00f996b5f, 0x7e8aadf57035328c,
	0x0b2338b88dce7e34, 0x52304c77475935c0, 0x053c155ea548d8c1, 0x902e474fa5279dd4,
	0x4a7b8b9dc8394b8d, 0x0d1b0ab2025dd33b, 0xb995a960811803b0, 0xca53d85a3f62652e,
	0xf89d1077bfca781d, 0x69ea9a01605c3a40, 0xe71c09113379e60b, 0x753540cc33f36030,
	0x97107cfe4d4f95ad, 0x89185340ed4184a5, 0xad638ee975dff094, 0xcc9ee7e54c7c9454,
	0xef33ca16cd7bc77b, 0xde0c907b30f2f175, 0x17aa25565d89a4e1, 0x6a5f1d4caace7b30,
	0x32f8fe343f6be784, 0x603e47c914db8037, 0x56144dd959568c03, 0xe7906692d84384d2,
	0xec9da27a84368b3c, 0xdf039c83c8d5242d, 0xc5f9ab018586bea7, 0x3b1ee06cf0bea5a8,
	0xc980715f6882191a, 0x07e98d39bd2f8f37, 0xb81dcb7a269696fd, 0x1c35248eff66d2cd,
	0x07548e21e49bb975, 0x022f1b0ee3f5a2fb, 0x9f3dcbd9fbe02e29, 0xf04d162e8881ea74,
	0x600d0cfd18fdce1e, 0xe17e43144dcdd4db, 0xef0dfca029146d2a, 0x82847d3c4163dcf8,
	0xa28704b2e9bf1d18, 0x6a9d1d9a1cb2fa5b, 0x68c08c1e9e1ddcb0, 0xa67f5e08f49531e2,
	0x1c6c4ab7e7b8350e, 0x6ea37f00161ec446, 0x96e9604ecfaf1b7d, 0x49753bcec0e08109,
	0xb9e55ced86f50241, 0xbe4955fc8546d530, 0x5701ca3c0d086224, 0xc968ed1301f1cc97,
	0x30ea82e12cf3d384, 0x8ec28d1e48ec519f, 0x00cd873679cd514a, 0x3401bc2e03dc65f0,
	0x80e724f07c519b77, 0x705dbbb0432dfe18, 0x48ec2094f4dcd7b4, 0x6576cc5db54b270a,
	0x521a1e87eaa5521c, 0x06caf95f0c6f67bd, 0x704c5da9a423fd59, 0xb7edda0de77725be,
	0xf3f5339cd8dbde46, 0xe148ad1ffdbac843, 0x00261472f82b81d1, 0x61bbc4b5211446a7,
	0xfc6b6d74aedb1a5c, 0xd440262843a96e71, 0x27124f1d4e9bbffd, 0x1f53afa98c0f6f95,
}
